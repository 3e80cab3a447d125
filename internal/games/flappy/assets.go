package flappy

import (
	"errors"
	"fmt"
)

// ErrMissingAsset is returned when a required asset has no usable dimensions.
var ErrMissingAsset = errors.New("flappy: missing asset")

// AssetID names a sprite known to the asset collaborator.
type AssetID string

const (
	AssetPipe  AssetID = "pipe"
	AssetFloor AssetID = "floor"
)

// requiredAssets must resolve before the first tick.
var requiredAssets = []AssetID{AssetPipe, AssetFloor}

// Dimensions supplies sprite sizes in world units.
type Dimensions interface {
	Width(id AssetID) (float64, bool)
	Height(id AssetID) (float64, bool)
}

// Size is a sprite's width and height.
type Size struct {
	W, H float64
}

// DimensionTable is a static Dimensions implementation.
type DimensionTable map[AssetID]Size

func (t DimensionTable) Width(id AssetID) (float64, bool) {
	s, ok := t[id]
	return s.W, ok
}

func (t DimensionTable) Height(id AssetID) (float64, bool) {
	s, ok := t[id]
	return s.H, ok
}

// DefaultDimensions returns the sizes of the stock sprite set.
func DefaultDimensions() DimensionTable {
	return DimensionTable{
		AssetPipe:  {W: 52, H: 320},
		AssetFloor: {W: 336, H: 112},
	}
}

// metrics caches the asset sizes the systems need every tick.
type metrics struct {
	pipeW  float64
	floorW float64
}

func resolveMetrics(d Dimensions) (metrics, error) {
	if d == nil {
		return metrics{}, fmt.Errorf("%w: no dimension provider", ErrMissingAsset)
	}

	sizes := make(map[AssetID]Size, len(requiredAssets))
	for _, id := range requiredAssets {
		w, okW := d.Width(id)
		h, okH := d.Height(id)
		if !okW || !okH {
			return metrics{}, fmt.Errorf("%w: %q", ErrMissingAsset, id)
		}
		if w <= 0 || h <= 0 {
			return metrics{}, fmt.Errorf("%w: %q has size %vx%v", ErrMissingAsset, id, w, h)
		}
		sizes[id] = Size{W: w, H: h}
	}

	return metrics{
		pipeW:  sizes[AssetPipe].W,
		floorW: sizes[AssetFloor].W,
	}, nil
}

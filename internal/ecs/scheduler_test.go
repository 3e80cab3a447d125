package ecs

import (
	"reflect"
	"testing"
)

type recordCtx struct {
	order []string
}

func TestSchedulerRunsInRegistrationOrder(t *testing.T) {
	step := func(name string) System[*recordCtx] {
		return SystemFunc[*recordCtx](func(ctx *recordCtx) {
			ctx.order = append(ctx.order, name)
		})
	}

	s := NewScheduler(step("input"), step("physics"))
	s.Add(step("collision"))
	s.Add(nil) // ignored

	ctx := &recordCtx{}
	s.Update(ctx)
	s.Update(ctx)

	expected := []string{"input", "physics", "collision", "input", "physics", "collision"}
	if !reflect.DeepEqual(ctx.order, expected) {
		t.Errorf("order = %v, expected %v", ctx.order, expected)
	}
	if len(s.Systems()) != 3 {
		t.Errorf("Systems() len = %d, expected 3", len(s.Systems()))
	}
}

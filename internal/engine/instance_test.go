package engine

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bisarnacki/magog/internal/core/types"
	"github.com/bisarnacki/magog/internal/domain"
	"github.com/bisarnacki/magog/internal/forms"
	"github.com/bisarnacki/magog/pkg/api"
	"github.com/bisarnacki/magog/pkg/dungeon"
)

func newTestInstance(t *testing.T) (*Instance, types.EntityID) {
	t.Helper()
	w := newTestWorld(t)
	player := spawnPlayer(t, w, origin)
	return NewInstance(w, nil, time.Millisecond, nil), player
}

func cmd(action domain.ActionType, payload string) domain.InternalCommand {
	c := domain.InternalCommand{Action: action}
	if payload != "" {
		c.Payload = json.RawMessage(payload)
	}
	return c
}

func TestInstance_ExecuteStep(t *testing.T) {
	inst, player := newTestInstance(t)

	res, err := inst.Execute(cmd(domain.ActionStep, `{"dir":"S"}`))
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if res.Outcome != domain.Acted {
		t.Fatalf("outcome = %s, want ACTED", res.Outcome)
	}
	if loc, _ := inst.World.Location(player); loc != origin.Step(domain.South, 1) {
		t.Fatalf("player at %v", loc)
	}
	if inst.World.Tick() == 0 {
		t.Fatal("world must advance after a spent turn")
	}
	if b, _ := inst.World.Brain(player); !b.IsReady(inst.World.Tick()) {
		t.Fatal("player must be ready after Execute returns")
	}

	if len(inst.Replay.Actions) != 1 {
		t.Fatalf("journal has %d actions, want 1", len(inst.Replay.Actions))
	}
	rec := inst.Replay.Actions[0]
	if rec.Tick != 0 || rec.Token != player || rec.Action != domain.ActionStep {
		t.Fatalf("unexpected journal entry %+v", rec)
	}
}

func TestInstance_BumpAttackEmitsEvents(t *testing.T) {
	inst, _ := newTestInstance(t)
	dummy := spawn(t, inst.World, "dummy", origin.Step(domain.North, 1))

	if _, err := inst.Execute(cmd(domain.ActionStep, `{"dir":"N"}`)); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if hp(t, inst.World, dummy) != 90 {
		t.Fatalf("dummy hp = %d, want 90", hp(t, inst.World, dummy))
	}

	state := inst.State()
	var damaged bool
	for _, ev := range state.Events {
		if ev.Kind == "DAMAGE" && ev.EntityID == IDString(dummy) {
			damaged = true
		}
	}
	if !damaged {
		t.Fatalf("no DAMAGE event for dummy in %+v", state.Events)
	}
	var logged bool
	for _, l := range state.Logs {
		if strings.Contains(l.Text, "урона") {
			logged = true
		}
	}
	if !logged {
		t.Fatal("damage text must reach the log")
	}
	if again := inst.State(); len(again.Logs) != 0 || len(again.Events) != 0 {
		t.Fatal("State must drain logs and events")
	}
}

func TestInstance_Rejected(t *testing.T) {
	tests := []struct {
		name string
		cmd  func(player types.EntityID) domain.InternalCommand
	}{
		{"unknown action", func(types.EntityID) domain.InternalCommand {
			return cmd(domain.ActionUnknown, "")
		}},
		{"missing payload", func(types.EntityID) domain.InternalCommand {
			return cmd(domain.ActionStep, "")
		}},
		{"bad direction", func(types.EntityID) domain.InternalCommand {
			return cmd(domain.ActionStep, `{"dir":"W"}`)
		}},
		{"bad item id", func(types.EntityID) domain.InternalCommand {
			return cmd(domain.ActionEquip, `{"itemId":"sword"}`)
		}},
		{"foreign token", func(player types.EntityID) domain.InternalCommand {
			c := cmd(domain.ActionIdle, "")
			c.Token = player + 1
			return c
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst, player := newTestInstance(t)
			if _, err := inst.Execute(tt.cmd(player)); err == nil {
				t.Fatal("expected error")
			}
			if inst.World.Tick() != 0 {
				t.Fatalf("rejected command advanced the world to %d", inst.World.Tick())
			}
			if len(inst.Replay.Actions) != 0 {
				t.Fatal("rejected command must not be journaled")
			}
		})
	}
}

func TestInstance_NoPlayer(t *testing.T) {
	inst := NewInstance(newTestWorld(t), nil, time.Millisecond, nil)
	if _, err := inst.Execute(cmd(domain.ActionIdle, "")); !errors.Is(err, ErrNoPlayer) {
		t.Fatalf("err = %v, want ErrNoPlayer", err)
	}
}

func TestInstance_InitAndRefusal(t *testing.T) {
	inst, _ := newTestInstance(t)
	inst.World.Terrains().Paint(origin.Step(domain.South, 1), domain.TerrainWall)

	res, err := inst.Execute(cmd(domain.ActionInit, ""))
	if err != nil || res.Outcome != domain.Declined {
		t.Fatalf("init = %+v, %v", res, err)
	}
	res, err = inst.Execute(cmd(domain.ActionStep, `{"dir":"S"}`))
	if err != nil || res.Outcome != domain.CannotAct {
		t.Fatalf("step into wall = %+v, %v", res, err)
	}

	if inst.World.Tick() != 0 {
		t.Fatalf("tick = %d, want 0", inst.World.Tick())
	}
	// INIT в журнал не пишется, отказ пишется: он часть ввода игрока.
	if len(inst.Replay.Actions) != 1 {
		t.Fatalf("journal has %d actions, want 1", len(inst.Replay.Actions))
	}

	state := inst.State()
	if len(state.Logs) != 2 || state.Logs[1].Type != "ERROR" {
		t.Fatalf("unexpected logs %+v", state.Logs)
	}
	if state.MyEntityID == "" || len(state.Map) == 0 {
		t.Fatal("state must carry the player view")
	}
}

func TestInstance_RunAndDo(t *testing.T) {
	w := newTestWorld(t)
	spawnPlayer(t, w, origin)
	svc := NewService(w, time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.Start(ctx)

	updates := svc.Hub.Register("s1")
	if err := svc.ProcessCommand("s1", api.ClientCommand{Action: "idle"}); err != nil {
		t.Fatalf("process: %v", err)
	}

	select {
	case msg := <-updates:
		if msg.Type != "UPDATE" || msg.Tick == 0 {
			t.Fatalf("unexpected update %+v", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no update published")
	}

	if err := svc.ProcessCommand("s1", api.ClientCommand{Action: "STEP"}); err != nil {
		t.Fatalf("process: %v", err)
	}
	select {
	case msg := <-updates:
		if msg.Type != "ERROR" || msg.Error == "" {
			t.Fatalf("expected ERROR, got %+v", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no error sent")
	}

	// Ошибка отключённой сессии никому не уходит.
	if err := svc.ProcessCommand("ghost", api.ClientCommand{Action: "STEP"}); err != nil {
		t.Fatalf("process: %v", err)
	}
	if err := svc.ProcessCommand("s1", api.ClientCommand{Action: "IDLE"}); err != nil {
		t.Fatalf("process: %v", err)
	}
	select {
	case msg := <-updates:
		if msg.Type != "UPDATE" {
			t.Fatalf("s1 got %+v, want the IDLE update", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no update published")
	}

	var tick uint64
	if err := svc.Instance.Do(ctx, func(w *World) { tick = w.Tick() }); err != nil {
		t.Fatalf("do: %v", err)
	}
	if tick == 0 {
		t.Fatal("Do must observe the advanced world")
	}

	cancel()
	stopped, stop := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer stop()
	time.Sleep(10 * time.Millisecond)
	if err := svc.Instance.Do(stopped, func(*World) {}); err == nil {
		t.Fatal("Do on a stopped instance must fail")
	}
}

func TestService_UnknownAction(t *testing.T) {
	w := newTestWorld(t)
	svc := NewService(w, time.Millisecond, nil)
	if err := svc.ProcessCommand("s1", api.ClientCommand{Action: "DANCE"}); err == nil {
		t.Fatal("expected error")
	}
	if len(svc.Instance.CommandChan) != 0 {
		t.Fatal("unknown action must not reach the instance")
	}
}

func TestBuildWorld(t *testing.T) {
	reg := forms.Default()
	for _, name := range dungeon.Builtins() {
		t.Run(name, func(t *testing.T) {
			lvl, err := dungeon.Builtin(name)
			if err != nil {
				t.Fatalf("builtin: %v", err)
			}
			w, err := BuildWorld(Config{Seed: 1}, reg, lvl)
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			player, ok := w.Player()
			if !ok {
				t.Fatal("no player")
			}
			if loc, _ := w.Location(player); loc != lvl.Start {
				t.Fatalf("player at %v, want %v", loc, lvl.Start)
			}
			for _, s := range lvl.Spawns {
				if len(w.EntitiesAt(s.Loc)) == 0 {
					t.Errorf("nothing spawned for %q at %v", s.Form, s.Loc)
				}
			}
			if w.Terrains().Len() != len(lvl.Cells) {
				t.Fatalf("painted %d cells, want %d", w.Terrains().Len(), len(lvl.Cells))
			}
		})
	}

	noStart, err := dungeon.NewLevel(origin).Rows("...").Build()
	if err != nil {
		t.Fatalf("build level: %v", err)
	}
	if _, err := BuildWorld(Config{Seed: 1}, reg, noStart); err == nil {
		t.Fatal("level without start must fail")
	}
}

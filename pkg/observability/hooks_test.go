package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	NoopGenerationHooks{}.OnGenerate("default", 5, 6, false, time.Millisecond)

	e := NoopExportHooks{}
	e.OnExportStart(ctx, "0x822b8fec20", []string{"png"})
	e.OnExportComplete(ctx, "0x822b8fec20", []string{"png"}, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "artifact")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Generation().(NoopGenerationHooks); !ok {
		t.Error("Generation() should return NoopGenerationHooks by default")
	}
	if _, ok := Export().(NoopExportHooks); !ok {
		t.Error("Export() should return NoopExportHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	gen := &recordingGenerationHooks{}
	SetGenerationHooks(gen)
	Generation().OnGenerate("arc", 3, 12, false, time.Millisecond)
	if gen.calls != 1 || gen.mode != "arc" {
		t.Errorf("generation hook not called: %+v", gen)
	}

	customExport := &testExportHooks{}
	SetExportHooks(customExport)
	if Export() != customExport {
		t.Error("SetExportHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Reset()
	if _, ok := Export().(NoopExportHooks); !ok {
		t.Error("Reset() should restore NoopExportHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testExportHooks{}
	SetExportHooks(custom)
	SetExportHooks(nil)
	if Export() != custom {
		t.Error("SetExportHooks(nil) should be ignored")
	}

	Reset()
}

type testExportHooks struct{ NoopExportHooks }
type testCacheHooks struct{ NoopCacheHooks }

type recordingGenerationHooks struct {
	calls int
	mode  string
}

func (r *recordingGenerationHooks) OnGenerate(mode string, _, _ int, _ bool, _ time.Duration) {
	r.calls++
	r.mode = mode
}

package ui

import "testing"

func TestStackKeepsPushOrder(t *testing.T) {
	app := New()
	a := NewActivity(func() *View { return NewView() })
	b := NewActivity(func() *View { return NewView() })

	app.Push(a)
	app.Push(b)

	got := app.Stack().Activities()
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("stack order = %v, want [a b]", got)
	}
	if !app.Stack().Contains(a) || !app.Stack().Contains(b) {
		t.Fatal("stack must contain both activities")
	}
	if app.Stack().Len() != 2 {
		t.Fatalf("len = %d, want 2", app.Stack().Len())
	}
}

func TestStackContainsIsIdentityBased(t *testing.T) {
	app := New()
	a := NewActivity(func() *View { return NewView() })
	other := NewActivity(func() *View { return NewView() })
	app.Push(a)
	if app.Stack().Contains(other) {
		t.Fatal("stack must not contain an unpushed activity")
	}
}

func TestPushMountsContentExactlyOnce(t *testing.T) {
	app := New()
	mounts := 0
	act := NewActivity(func() *View {
		mounts++
		return NewView()
	})
	app.Push(act)

	if mounts != 1 {
		t.Fatalf("mounts = %d, want 1", mounts)
	}
	if !act.Mounted() || act.Content() == nil {
		t.Fatal("push must mount the content tree")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("double mount must panic")
		}
	}()
	app.Push(act)
}

func TestActivityWithoutConstructorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("mounting without a content constructor must panic")
		}
	}()
	New().Push(NewActivity(nil))
}

func TestCreatedFiresAfterMounting(t *testing.T) {
	app := New()
	owner := NewHandle()

	var sawContent bool
	app.Created().Observe(owner, func(act *Activity) {
		// The guarantee: observers of creation always see an existing
		// content tree.
		sawContent = act.Mounted() && act.Content() != nil
	})

	app.Push(NewActivity(func() *View { return NewView() }))
	app.Runner().Frame()
	if !sawContent {
		t.Fatal("created observer must run after the content tree exists")
	}
}

func TestActivityFrameSizesRootToWindow(t *testing.T) {
	app := New()
	act := NewActivity(func() *View {
		root := NewView()
		root.SetBackground(NewPaint(White))
		return root
	})
	app.Push(act)

	c := &recordingCanvas{}
	app.Step(c, 320, 240)

	if !act.Visible() {
		t.Fatal("a framed activity should be visible")
	}
	root := act.Content()
	if root.Width() != 320 || root.Height() != 240 {
		t.Fatalf("root = %vx%v, want 320x240", root.Width(), root.Height())
	}
	if len(c.rects) != 1 {
		t.Fatalf("draw calls = %d, want 1", len(c.rects))
	}

	// A steady window size must not dirty the tree again.
	app.Step(c, 320, 240)
	if root.Dirty() {
		t.Fatal("unchanged window size should not dirty the tree")
	}

	app.Step(c, 100, 240)
	if root.Width() != 100 {
		t.Fatalf("root width = %v after resize, want 100", root.Width())
	}
}

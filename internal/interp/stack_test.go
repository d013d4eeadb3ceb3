package interp

import "testing"

func TestStackPushPopOrder(t *testing.T) {
	var s Stack
	s.Push(GoSubFrame{ReturnTo: 1})
	s.Push(DoFrame{ReturnTo: 2})
	s.Push(ForFrame{ReturnTo: 3, Limit: 10, Step: 1})

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}

	top, ok := s.Pop()
	if !ok {
		t.Fatal("Pop() on non-empty stack returned false")
	}
	forFrame, ok := top.(ForFrame)
	if !ok || forFrame.ReturnTo != 3 {
		t.Fatalf("top frame = %#v, want ForFrame{ReturnTo: 3, ...}", top)
	}

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
}

func TestStackPopEmpty(t *testing.T) {
	var s Stack
	if _, ok := s.Pop(); ok {
		t.Fatal("Pop() on empty stack returned true")
	}
	if _, ok := s.Top(); ok {
		t.Fatal("Top() on empty stack returned true")
	}
}

func TestStackPopGoSubRejectsWrongShape(t *testing.T) {
	var s Stack
	s.Push(DoFrame{ReturnTo: 5})
	if _, ok := s.PopGoSub(); ok {
		t.Fatal("PopGoSub() should fail against a DoFrame")
	}
	if s.Len() != 1 {
		t.Fatalf("a failed PopGoSub must not remove the frame, Len() = %d", s.Len())
	}
}

func TestStackPopGoSubSucceeds(t *testing.T) {
	var s Stack
	s.Push(GoSubFrame{ReturnTo: 42})
	frame, ok := s.PopGoSub()
	if !ok || frame.ReturnTo != 42 {
		t.Fatalf("frame=%#v ok=%v", frame, ok)
	}
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
}

func TestStackClear(t *testing.T) {
	var s Stack
	s.Push(GoSubFrame{ReturnTo: 1})
	s.Push(GoSubFrame{ReturnTo: 2})
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("Len() = %d after Clear, want 0", s.Len())
	}
}

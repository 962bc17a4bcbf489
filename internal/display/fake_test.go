package display

import (
	"sync"
	"testing"
	"time"

	"github.com/jmylchreest/win7notify/internal/geometry"
	"github.com/jmylchreest/win7notify/internal/icon"
)

var testArea = geometry.Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1040}

// fakeBackend records every platform call and delivers create/destroy
// events synchronously, the way the Win32 message loop does on the owning
// thread.
type fakeBackend struct {
	mu sync.Mutex
	d  Dispatcher

	area        geometry.Rect
	areaErr     error
	areaCalls   int
	registerErr error
	createErr   error
	taskbarErr  error
	shadowErr   error
	alertErr    error

	registerCalls int
	next          Handle
	created       []Handle
	positions     map[Handle]geometry.Point
	moves         int
	shown         map[Handle]bool
	hidden        map[Handle]int
	destroyed     map[Handle]int
	live          map[Handle]bool
	invalidated   []geometry.Rect
	cursors       []Cursor
	tracked       int
	alerts        int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		area:      testArea,
		next:      100,
		positions: make(map[Handle]geometry.Point),
		shown:     make(map[Handle]bool),
		hidden:    make(map[Handle]int),
		destroyed: make(map[Handle]int),
		live:      make(map[Handle]bool),
	}
}

func (f *fakeBackend) Attach(d Dispatcher) { f.d = d }

func (f *fakeBackend) RegisterClass() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registerCalls++
	return f.registerErr
}

func (f *fakeBackend) WorkArea() (geometry.Rect, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.areaCalls++
	return f.area, f.areaErr
}

func (f *fakeBackend) CreateWindow(token Token, bounds geometry.Rect) (Handle, error) {
	f.mu.Lock()
	if f.createErr != nil {
		f.mu.Unlock()
		return 0, f.createErr
	}
	f.next++
	h := f.next
	f.created = append(f.created, h)
	f.live[h] = true
	f.positions[h] = bounds.Origin()
	f.mu.Unlock()

	f.d.Dispatch(Event{Kind: EventCreate, Handle: h, Token: token})
	return h, nil
}

func (f *fakeBackend) Show(h Handle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shown[h] = true
}

func (f *fakeBackend) Move(h Handle, pos geometry.Point) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.positions[h] = pos
	f.moves++
}

func (f *fakeBackend) Hide(h Handle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hidden[h]++
	f.shown[h] = false
}

func (f *fakeBackend) Destroy(h Handle) {
	f.mu.Lock()
	f.destroyed[h]++
	first := f.live[h]
	delete(f.live, h)
	f.mu.Unlock()

	if first {
		f.d.Dispatch(Event{Kind: EventDestroy, Handle: h})
	}
}

func (f *fakeBackend) Invalidate(h Handle, area geometry.Rect) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidated = append(f.invalidated, area)
}

func (f *fakeBackend) SetCursor(c Cursor) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cursors = append(f.cursors, c)
}

func (f *fakeBackend) TrackLeave(h Handle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tracked++
}

func (f *fakeBackend) ExcludeFromTaskbar(h Handle) error { return f.taskbarErr }
func (f *fakeBackend) EnableShadow(h Handle) error       { return f.shadowErr }

func (f *fakeBackend) Alert() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.alerts++
	return f.alertErr
}

func (f *fakeBackend) position(h Handle) geometry.Point {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.positions[h]
}

// reuseHandle makes the next created window get h, the way the system
// recycles handles of destroyed windows.
func (f *fakeBackend) reuseHandle(h Handle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next = h - 1
}

func (f *fakeBackend) moveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.moves
}

func (f *fakeBackend) lastCursor() Cursor {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cursors[len(f.cursors)-1]
}

// manualScheduler records scheduled tasks so tests can fire them without
// sleeping.
type manualScheduler struct {
	mu    sync.Mutex
	tasks []scheduledTask
}

type scheduledTask struct {
	after time.Duration
	run   func()
}

func (s *manualScheduler) Schedule(after time.Duration, task func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, scheduledTask{after: after, run: task})
}

func (s *manualScheduler) fire(i int) {
	s.mu.Lock()
	task := s.tasks[i]
	s.mu.Unlock()
	task.run()
}

// canvasOp is one recorded drawing call.
type canvasOp struct {
	kind  string
	rect  geometry.Rect
	color Color
	text  string
	font  Font
	flags TextFormat
}

type recordingCanvas struct {
	ops     []canvasOp
	iconErr error
}

func (c *recordingCanvas) FillRect(r geometry.Rect, col Color) {
	c.ops = append(c.ops, canvasOp{kind: "fill", rect: r, color: col})
}

func (c *recordingCanvas) DrawIcon(bm *icon.Bitmap, r geometry.Rect) error {
	c.ops = append(c.ops, canvasOp{kind: "icon", rect: r})
	return c.iconErr
}

func (c *recordingCanvas) DrawText(text string, r geometry.Rect, font Font, col Color, format TextFormat) {
	c.ops = append(c.ops, canvasOp{kind: "text", rect: r, color: col, text: text, font: font, flags: format})
}

func (c *recordingCanvas) kinds() []string {
	kinds := make([]string, len(c.ops))
	for i, op := range c.ops {
		kinds[i] = op.kind
	}
	return kinds
}

func newTestManager(t *testing.T) (*Manager, *fakeBackend, *manualScheduler) {
	t.Helper()
	backend := newFakeBackend()
	sched := &manualScheduler{}
	m := NewManager(Options{Backend: backend, Scheduler: sched})
	return m, backend, sched
}

func persistent(summary string) Request {
	return Request{
		Content:    Content{AppName: "test", Summary: summary, Body: "body", Silent: true},
		Persistent: true,
	}
}

func testIcon() *icon.Image {
	img, err := icon.New(make([]byte, IconSize*IconSize*4), IconSize, IconSize)
	if err != nil {
		panic(err)
	}
	return img
}

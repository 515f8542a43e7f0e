package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	now          float64
	keepRunning  bool
}

// Update records that Update was called and stores the time.
func (m *MockScene) Update(now float64) bool {
	m.updateCalled = true
	m.now = now
	return m.keepRunning
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// MockResizableScene additionally records Resize and SaveOnExit calls.
type MockResizableScene struct {
	MockScene
	width, height int
	resizeCalls   int
	saved         bool
}

func (m *MockResizableScene) Resize(width, height int) {
	m.width, m.height = width, height
	m.resizeCalls++
}

func (m *MockResizableScene) SaveOnExit() bool {
	m.saved = true
	return true
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerUpdate verifies that Update forwards the time and the scheduling directive.
func TestSceneManagerUpdate(t *testing.T) {
	tests := []struct {
		name        string
		keepRunning bool
	}{
		{"场景继续", true},
		{"场景结束", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSceneManager()
			mockScene := &MockScene{keepRunning: tt.keepRunning}
			sm.SwitchTo(mockScene)

			got := sm.Update(12.5)
			if !mockScene.updateCalled {
				t.Error("Scene's Update method was not called")
			}
			if mockScene.now != 12.5 {
				t.Errorf("Expected now 12.5, got %.3f", mockScene.now)
			}
			if got != tt.keepRunning {
				t.Errorf("Update() = %v, want %v", got, tt.keepRunning)
			}
		})
	}
}

// TestSceneManagerUpdateNoScene verifies that Update handles nil scene gracefully.
func TestSceneManagerUpdateNoScene(t *testing.T) {
	sm := NewSceneManager()
	if !sm.Update(0.016) {
		t.Error("Update without a scene should keep the loop running")
	}
}

// TestSceneManagerDraw verifies that Draw calls the current scene's Draw method.
func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	screen := ebiten.NewImage(800, 600)
	sm.Draw(screen) // Should not panic without a scene

	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)
	sm.Draw(screen)

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerResize verifies that viewport changes reach Resizable scenes.
func TestSceneManagerResize(t *testing.T) {
	sm := NewSceneManager()
	scene := &MockResizableScene{}
	sm.SwitchTo(scene)

	sm.Resize(1100, 800)
	sm.Resize(1100, 800)
	if scene.resizeCalls != 1 {
		t.Errorf("Resize calls = %d, want 1 (same size is not forwarded)", scene.resizeCalls)
	}
	if scene.width != 1100 || scene.height != 800 {
		t.Errorf("Scene size = %dx%d, want 1100x800", scene.width, scene.height)
	}

	// A scene switched in later receives the known size immediately.
	next := &MockResizableScene{}
	sm.SwitchTo(next)
	if next.width != 1100 || next.height != 800 {
		t.Errorf("New scene size = %dx%d, want 1100x800", next.width, next.height)
	}

	w, h := sm.Size()
	if w != 1100 || h != 800 {
		t.Errorf("Size() = %dx%d, want 1100x800", w, h)
	}
}

// TestSceneManagerSaveOnExit verifies the optional Saveable hook.
func TestSceneManagerSaveOnExit(t *testing.T) {
	sm := NewSceneManager()
	if !sm.SaveOnExit() {
		t.Error("SaveOnExit without a scene should succeed")
	}

	sm.SwitchTo(&MockScene{})
	if !sm.SaveOnExit() {
		t.Error("SaveOnExit with a non-Saveable scene should succeed")
	}

	scene := &MockResizableScene{}
	sm.SwitchTo(scene)
	sm.SaveOnExit()
	if !scene.saved {
		t.Error("Saveable scene was not notified")
	}
}

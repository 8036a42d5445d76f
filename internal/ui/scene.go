package ui

import tea "github.com/charmbracelet/bubbletea"

// Scene is one screen of the host. Only the scene on top of the stack receives input.
type Scene interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Scene, tea.Cmd)
	View(width, height int) string
	Title() string
}

// SceneStack manages a stack of scenes with push/pop operations
type SceneStack struct {
	scenes []Scene
}

// NewSceneStack creates a new empty scene stack
func NewSceneStack() *SceneStack {
	return &SceneStack{
		scenes: make([]Scene, 0),
	}
}

// Push adds a scene to the top of the stack
func (s *SceneStack) Push(sc Scene) tea.Cmd {
	s.scenes = append(s.scenes, sc)
	return sc.Init()
}

// Pop removes and returns the top scene from the stack
// Returns nil if the stack is empty
func (s *SceneStack) Pop() Scene {
	if len(s.scenes) == 0 {
		return nil
	}

	top := s.scenes[len(s.scenes)-1]
	s.scenes = s.scenes[:len(s.scenes)-1]
	return top
}

// Current returns the top scene without removing it
// Returns nil if the stack is empty
func (s *SceneStack) Current() Scene {
	if len(s.scenes) == 0 {
		return nil
	}
	return s.scenes[len(s.scenes)-1]
}

func (s *SceneStack) Len() int {
	return len(s.scenes)
}

// Reset drops every scene and pushes base as the only one.
func (s *SceneStack) Reset(base Scene) tea.Cmd {
	s.scenes = s.scenes[:0]
	return s.Push(base)
}

// Broadcast sends msg to every scene, bottom first. Used for messages such as
// tea.WindowSizeMsg that scenes below the top still need.
func (s *SceneStack) Broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i, sc := range s.scenes {
		next, cmd := sc.Update(msg)
		if next != nil {
			s.scenes[i] = next
		}
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Each calls fn for every scene, bottom first.
func (s *SceneStack) Each(fn func(Scene)) {
	for _, sc := range s.scenes {
		fn(sc)
	}
}

// Update forwards the message to the current scene
func (s *SceneStack) Update(msg tea.Msg) tea.Cmd {
	current := s.Current()
	if current == nil {
		return nil
	}

	next, cmd := current.Update(msg)
	if next != nil {
		s.scenes[len(s.scenes)-1] = next
	}
	return cmd
}

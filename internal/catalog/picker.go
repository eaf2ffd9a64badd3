package catalog

import (
	"alcyxob/workout-tracker/internal/domain"
	"errors"
	"strings"
	"sync"
)

var (
	ErrUnknownCategory   = errors.New("unknown exercise category")
	ErrUnknownExercise   = errors.New("exercise not in this category")
	ErrDuplicateExercise = errors.New("exercise already listed in this category")
	ErrEmptyName         = errors.New("exercise name is required")
)

// Picker is the transient overlay of one exercise-picker session: names the
// user added per category, and built-ins hidden for this session only.
// The catalog itself never changes. A Picker is safe for concurrent use.
type Picker struct {
	mu      sync.Mutex
	custom  map[string][]string        // category -> names, in the order added
	removed map[string]map[string]bool // category -> lowercase built-in name
}

func NewPicker() *Picker {
	return &Picker{
		custom:  make(map[string][]string),
		removed: make(map[string]map[string]bool),
	}
}

// AddCustom lists a user-supplied name under category. A name that is
// already visible there (built-in or custom) is rejected; adding the name
// of a hidden built-in un-hides it instead.
func (p *Picker) AddCustom(category, name string) error {
	cat, ok := CanonicalCategory(category)
	if !ok {
		return ErrUnknownCategory
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if b, ok := builtinIn(cat, name); ok {
		if p.removed[cat][strings.ToLower(b.Name)] {
			delete(p.removed[cat], strings.ToLower(b.Name))
			return nil
		}
		return ErrDuplicateExercise
	}
	if indexFold(p.custom[cat], name) >= 0 {
		return ErrDuplicateExercise
	}
	p.custom[cat] = append(p.custom[cat], name)
	return nil
}

// Remove hides a built-in for this session, or drops a custom name.
func (p *Picker) Remove(category, name string) error {
	cat, ok := CanonicalCategory(category)
	if !ok {
		return ErrUnknownCategory
	}
	name = strings.TrimSpace(name)

	p.mu.Lock()
	defer p.mu.Unlock()
	if i := indexFold(p.custom[cat], name); i >= 0 {
		p.custom[cat] = append(p.custom[cat][:i], p.custom[cat][i+1:]...)
		return nil
	}
	b, ok := builtinIn(cat, name)
	if !ok {
		return ErrUnknownExercise
	}
	if p.removed[cat] == nil {
		p.removed[cat] = make(map[string]bool)
	}
	p.removed[cat][strings.ToLower(b.Name)] = true
	return nil
}

// Restore un-hides a built-in removed earlier in the session.
func (p *Picker) Restore(category, name string) error {
	cat, ok := CanonicalCategory(category)
	if !ok {
		return ErrUnknownCategory
	}
	b, ok := builtinIn(cat, strings.TrimSpace(name))
	if !ok {
		return ErrUnknownExercise
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.removed[cat], strings.ToLower(b.Name))
	return nil
}

// Options lists what the picker shows for category: visible built-ins in
// table order, then custom names. An empty category means all of them.
func (p *Picker) Options(category string) ([]domain.ExerciseInfo, error) {
	cats := categories
	if strings.TrimSpace(category) != "" {
		cat, ok := CanonicalCategory(category)
		if !ok {
			return nil, ErrUnknownCategory
		}
		cats = []string{cat}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	out := []domain.ExerciseInfo{}
	for _, cat := range cats {
		for _, b := range ByCategory(cat) {
			if !p.removed[cat][strings.ToLower(b.Name)] {
				out = append(out, b)
			}
		}
		for _, name := range p.custom[cat] {
			out = append(out, domain.ExerciseInfo{Name: name, Category: cat, Custom: true})
		}
	}
	return out, nil
}

// Search matches visible options across all categories by name substring.
func (p *Picker) Search(query string) []domain.ExerciseInfo {
	all, _ := p.Options("")
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all
	}
	out := []domain.ExerciseInfo{}
	for _, o := range all {
		if strings.Contains(strings.ToLower(o.Name), q) {
			out = append(out, o)
		}
	}
	return out
}

func builtinIn(category, name string) (domain.ExerciseInfo, bool) {
	for _, b := range builtins {
		if b.Category == category && strings.EqualFold(b.Name, name) {
			return b, true
		}
	}
	return domain.ExerciseInfo{}, false
}

func indexFold(names []string, name string) int {
	for i, n := range names {
		if strings.EqualFold(n, name) {
			return i
		}
	}
	return -1
}

package forms

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/bisarnacki/magog/internal/core/types"
	"github.com/bisarnacki/magog/internal/core/types/enums"
	"github.com/bisarnacki/magog/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed forms.yaml
var defaultFormsYAML []byte

// Form - шаблон, по которому мир создаёт сущность.
type Form struct {
	Name string
	Kind enums.EntityKind
	Desc domain.Desc

	// Rarity - обратный вес появления. 0 - форма не появляется случайно.
	Rarity   float64
	MinDepth int

	Stats     domain.Stats
	MaxHP     int32 // 0 - без компонента здоровья
	HasBrain  bool
	Brain     enums.BrainState
	MapMemory bool
	Item      *domain.Item
	Innate    []domain.Ability
	// Loadout - формы предметов, которые выдаются при создании.
	Loadout []string
}

// Weight - вес формы при случайном выборе.
func (f *Form) Weight() float64 {
	if f.Rarity <= 0 {
		return 0
	}
	return 1 / f.Rarity
}

// Registry - неизменяемый набор форм. Создаётся один раз при запуске.
type Registry struct {
	forms map[string]*Form
	order []string
}

type statsYAML struct {
	Power      int32    `yaml:"power"`
	Armor      int32    `yaml:"armor"`
	Intrinsics []string `yaml:"intrinsics"`
}

type itemYAML struct {
	Abilities []string  `yaml:"abilities"`
	Charges   int32     `yaml:"charges"`
	Slot      string    `yaml:"slot"`
	Bonus     statsYAML `yaml:"bonus"`
}

type formYAML struct {
	Name       string    `yaml:"name"`
	Kind       string    `yaml:"kind"`
	Title      string    `yaml:"title"`
	Glyph      string    `yaml:"glyph"`
	Rarity     *float64  `yaml:"rarity"`
	MinDepth   int       `yaml:"min_depth"`
	Power      int32     `yaml:"power"`
	Armor      int32     `yaml:"armor"`
	HP         int32     `yaml:"hp"`
	Intrinsics []string  `yaml:"intrinsics"`
	Brain      string    `yaml:"brain"`
	MapMemory  bool      `yaml:"map_memory"`
	Item       *itemYAML `yaml:"item"`
	Innate     []string  `yaml:"innate"`
	Loadout    []string  `yaml:"loadout"`
}

// Load читает список форм в YAML.
func Load(r io.Reader) (*Registry, error) {
	var raw []formYAML
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse forms: %w", err)
	}

	reg := &Registry{forms: make(map[string]*Form, len(raw))}
	for i, fy := range raw {
		f, err := fy.build()
		if err != nil {
			return nil, fmt.Errorf("form #%d: %w", i, err)
		}
		if _, dup := reg.forms[f.Name]; dup {
			return nil, fmt.Errorf("form %q defined twice", f.Name)
		}
		reg.forms[f.Name] = f
		reg.order = append(reg.order, f.Name)
	}

	for _, name := range reg.order {
		for _, item := range reg.forms[name].Loadout {
			lf, ok := reg.forms[item]
			if !ok {
				return nil, fmt.Errorf("form %q: unknown loadout form %q", name, item)
			}
			if lf.Item == nil {
				return nil, fmt.Errorf("form %q: loadout form %q is not an item", name, item)
			}
		}
	}
	return reg, nil
}

// LoadFile читает формы из файла. Пустой путь - встроенный набор.
func LoadFile(path string) (*Registry, error) {
	if path == "" {
		return Load(bytes.NewReader(defaultFormsYAML))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open forms %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Default возвращает встроенный набор форм.
func Default() *Registry {
	reg, err := Load(bytes.NewReader(defaultFormsYAML))
	if err != nil {
		panic(fmt.Sprintf("embedded forms are broken: %v", err))
	}
	return reg
}

// Named ищет форму по имени.
func (r *Registry) Named(name string) (*Form, bool) {
	f, ok := r.forms[name]
	return f, ok
}

// Names - имена форм в порядке файла.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// RandomMob выбирает форму моба для глубины depth с весом 1/rarity.
func (r *Registry) RandomMob(depth int, rng *rand.Rand) (*Form, bool) {
	return r.random(enums.KindMob, depth, rng)
}

// RandomItem - то же для предметов.
func (r *Registry) RandomItem(depth int, rng *rand.Rand) (*Form, bool) {
	return r.random(enums.KindItem, depth, rng)
}

func (r *Registry) random(kind enums.EntityKind, depth int, rng *rand.Rand) (*Form, bool) {
	var candidates []*Form
	total := 0.0
	for _, name := range r.order {
		f := r.forms[name]
		if f.Kind != kind || f.MinDepth > depth || f.Weight() == 0 {
			continue
		}
		candidates = append(candidates, f)
		total += f.Weight()
	}
	if len(candidates) == 0 {
		return nil, false
	}

	x := rng.Float64() * total
	for _, f := range candidates {
		x -= f.Weight()
		if x < 0 {
			return f, true
		}
	}
	return candidates[len(candidates)-1], true
}

func (fy formYAML) build() (*Form, error) {
	if fy.Name == "" {
		return nil, fmt.Errorf("missing name")
	}
	f := &Form{
		Name:      fy.Name,
		Kind:      enums.ParseEntityKind(fy.Kind),
		Rarity:    1,
		MinDepth:  fy.MinDepth,
		MaxHP:     fy.HP,
		MapMemory: fy.MapMemory,
		Loadout:   fy.Loadout,
	}
	if f.Kind == enums.KindUnknown || f.Kind == enums.KindFx {
		return nil, fmt.Errorf("%s: bad kind %q", fy.Name, fy.Kind)
	}
	if fy.Rarity != nil {
		if *fy.Rarity < 0 {
			return nil, fmt.Errorf("%s: negative rarity", fy.Name)
		}
		f.Rarity = *fy.Rarity
	}

	glyph, err := types.ParseGlyph(fy.Glyph)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fy.Name, err)
	}
	title := fy.Title
	if title == "" {
		title = fy.Name
	}
	f.Desc = domain.Desc{Name: title, Glyph: glyph, Form: fy.Name}

	f.Stats, err = statsYAML{Power: fy.Power, Armor: fy.Armor, Intrinsics: fy.Intrinsics}.build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fy.Name, err)
	}

	switch {
	case f.Kind == enums.KindPlayer:
		f.HasBrain = true
		f.Brain = enums.BrainPlayer
	case fy.Brain != "":
		f.HasBrain = true
		f.Brain = enums.ParseBrainState(fy.Brain)
	}

	for _, s := range fy.Innate {
		a, ok := domain.ParseAbility(s)
		if !ok {
			return nil, fmt.Errorf("%s: unknown ability %q", fy.Name, s)
		}
		f.Innate = append(f.Innate, a)
	}

	if fy.Item != nil {
		item, err := fy.Item.build()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fy.Name, err)
		}
		f.Item = &item
	} else if f.Kind == enums.KindItem {
		return nil, fmt.Errorf("%s: item form without item section", fy.Name)
	}
	return f, nil
}

func (sy statsYAML) build() (domain.Stats, error) {
	st := domain.Stats{Power: sy.Power, Armor: sy.Armor}
	for _, s := range sy.Intrinsics {
		flag, ok := domain.ParseIntrinsic(s)
		if !ok {
			return st, fmt.Errorf("unknown intrinsic %q", s)
		}
		st.Intrinsics |= flag
	}
	return st, nil
}

func (iy itemYAML) build() (domain.Item, error) {
	item := domain.Item{Charges: iy.Charges, Slot: enums.SlotBag0}
	if iy.Slot != "" {
		slot, ok := enums.ParseSlot(iy.Slot)
		if !ok {
			return item, fmt.Errorf("unknown slot %q", iy.Slot)
		}
		item.Slot = slot
	}
	for _, s := range iy.Abilities {
		a, ok := domain.ParseAbility(s)
		if !ok {
			return item, fmt.Errorf("unknown ability %q", s)
		}
		item.Abilities = append(item.Abilities, a)
	}
	bonus, err := iy.Bonus.build()
	if err != nil {
		return item, err
	}
	item.Bonus = bonus
	return item, nil
}

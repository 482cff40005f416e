// internal/defs/loader.go
package defs

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

//go:embed data/*.json
var embedded embed.FS

const (
	towersFile  = "towers.json"
	enemiesFile = "enemies.json"
	wavesFile   = "waves.json"
	mapsFile    = "maps.json"
)

type wavesSrc struct {
	Authored []WaveDefinition `json:"authored"`
	Endless  *endlessSrc      `json:"endless,omitempty"`
}

// Catalog — неизменяемые определения башен, врагов, волн и карт.
type Catalog struct {
	towers     map[string]TowerDefinition
	towerOrder []string
	enemies    map[string]EnemyDefinition
	waves      []WaveDefinition
	endless    *EndlessRule
	maps       []MapDefinition
}

// LoadDefault loads the catalog compiled into the binary.
func LoadDefault() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}
	return Load(sub)
}

// LoadDir loads the catalog from a directory on disk.
func LoadDir(dir string) (*Catalog, error) {
	return Load(os.DirFS(dir))
}

// Load reads the four catalog files from fsys and validates them.
func Load(fsys fs.FS) (*Catalog, error) {
	var towerDefs []TowerDefinition
	if err := readJSON(fsys, towersFile, &towerDefs); err != nil {
		return nil, err
	}
	var enemyDefs []EnemyDefinition
	if err := readJSON(fsys, enemiesFile, &enemyDefs); err != nil {
		return nil, err
	}
	var waves wavesSrc
	if err := readJSON(fsys, wavesFile, &waves); err != nil {
		return nil, err
	}
	var maps []MapDefinition
	if err := readJSON(fsys, mapsFile, &maps); err != nil {
		return nil, err
	}

	c := &Catalog{
		towers:  make(map[string]TowerDefinition, len(towerDefs)),
		enemies: make(map[string]EnemyDefinition, len(enemyDefs)),
		maps:    maps,
	}
	for _, def := range towerDefs {
		if _, dup := c.towers[def.ID]; dup {
			return nil, fmt.Errorf("duplicate tower definition %q", def.ID)
		}
		c.towers[def.ID] = def
		c.towerOrder = append(c.towerOrder, def.ID)
	}
	for _, def := range enemyDefs {
		if _, dup := c.enemies[def.ID]; dup {
			return nil, fmt.Errorf("duplicate enemy definition %q", def.ID)
		}
		c.enemies[def.ID] = def
	}
	for i, w := range waves.Authored {
		w.Number = i + 1
		if w.HealthMultiplier == 0 {
			w.HealthMultiplier = 1
		}
		c.waves = append(c.waves, w)
	}
	if waves.Endless != nil {
		rule, err := compileEndless(*waves.Endless)
		if err != nil {
			return nil, err
		}
		c.endless = rule
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return c, nil
}

func readJSON(fsys fs.FS, name string, v any) error {
	file, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(file, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", name, err)
	}
	return nil
}

// Validate проверяет ссылки и значения. Пустой путь карты сюда не входит:
// это ошибка LoadMap.
func (c *Catalog) Validate() error {
	var errs []error
	if len(c.towers) == 0 {
		errs = append(errs, errors.New("no tower definitions"))
	}
	for _, id := range c.towerOrder {
		def := c.towers[id]
		if def.Cost <= 0 {
			errs = append(errs, fmt.Errorf("tower %q: cost must be positive", id))
		}
		errs = append(errs, validateStats("tower "+id, def.TowerStats))
		prev := 0
		for i, tier := range def.Upgrades {
			name := fmt.Sprintf("tower %q tier %d", id, i+1)
			if tier.Cost < prev {
				errs = append(errs, fmt.Errorf("%s: cost %d below previous tier %d", name, tier.Cost, prev))
			}
			prev = tier.Cost
			errs = append(errs, validateStats(name, tier.TowerStats))
		}
	}
	for id, def := range c.enemies {
		if def.Health <= 0 || def.Speed <= 0 || def.Radius <= 0 {
			errs = append(errs, fmt.Errorf("enemy %q: health, speed and radius must be positive", id))
		}
		if _, err := def.Color.RGBA(); err != nil {
			errs = append(errs, fmt.Errorf("enemy %q color %q: %w", id, def.Color, err))
		}
	}
	if len(c.waves) == 0 && c.endless == nil {
		errs = append(errs, errors.New("no waves"))
	}
	for _, w := range c.waves {
		if w.Total() == 0 {
			errs = append(errs, fmt.Errorf("wave %d is empty", w.Number))
		}
		for _, g := range w.Groups {
			if _, ok := c.enemies[g.EnemyID]; !ok {
				errs = append(errs, fmt.Errorf("wave %d: %w %q", w.Number, ErrUnknownEnemy, g.EnemyID))
			}
		}
	}
	if c.endless != nil {
		for _, id := range c.endless.enemyIDs() {
			if _, ok := c.enemies[id]; !ok {
				errs = append(errs, fmt.Errorf("endless rule: %w %q", ErrUnknownEnemy, id))
			}
		}
	}
	if len(c.maps) == 0 {
		errs = append(errs, errors.New("no maps"))
	}
	for _, m := range c.maps {
		for _, col := range []HexColor{m.Background, m.PathColor, m.PathBorder} {
			if _, err := col.RGBA(); err != nil {
				errs = append(errs, fmt.Errorf("map %q color %q: %w", m.Name, col, err))
			}
		}
	}
	return errors.Join(errs...)
}

func validateStats(name string, s TowerStats) error {
	var errs []error
	if s.Range <= 0 {
		errs = append(errs, fmt.Errorf("%s: range must be positive", name))
	}
	if s.FireInterval <= 0 {
		errs = append(errs, fmt.Errorf("%s: fire interval must be positive", name))
	}
	if s.SlowFactor < 0 || s.SlowFactor >= 1 {
		errs = append(errs, fmt.Errorf("%s: slow factor %v outside [0,1)", name, s.SlowFactor))
	}
	if _, err := s.Color.RGBA(); err != nil {
		errs = append(errs, fmt.Errorf("%s color %q: %w", name, s.Color, err))
	}
	return errors.Join(errs...)
}

// Tower returns the definition for a tower type key.
func (c *Catalog) Tower(id string) (TowerDefinition, bool) {
	def, ok := c.towers[id]
	return def, ok
}

// TowerIDs — ключи башен в порядке каталога (горячие клавиши 1..5).
func (c *Catalog) TowerIDs() []string {
	return append([]string(nil), c.towerOrder...)
}

// Enemy returns the definition for an enemy type key.
func (c *Catalog) Enemy(id string) (EnemyDefinition, bool) {
	def, ok := c.enemies[id]
	return def, ok
}

// AuthoredWaves — число волн из таблицы.
func (c *Catalog) AuthoredWaves() int {
	return len(c.waves)
}

// Wave возвращает состав волны n (с 1). После таблицы — бесконечное правило.
func (c *Catalog) Wave(n int) (WaveDefinition, error) {
	if n < 1 {
		return WaveDefinition{}, fmt.Errorf("wave %d: wave numbers start at 1", n)
	}
	if n <= len(c.waves) {
		w := c.waves[n-1]
		w.Groups = append([]WaveGroup(nil), w.Groups...)
		return w, nil
	}
	if c.endless == nil {
		// без правила повторяем последнюю авторскую волну
		w := c.waves[len(c.waves)-1]
		w.Number = n
		w.Groups = append([]WaveGroup(nil), w.Groups...)
		return w, nil
	}
	return c.endless.Wave(n)
}

// Describe — строка превью: "Wave 3: 6x Walker, 3x Runner".
func (c *Catalog) Describe(w WaveDefinition) string {
	parts := make([]string, 0, len(w.Groups))
	for _, g := range w.Groups {
		name := g.EnemyID
		if def, ok := c.enemies[g.EnemyID]; ok {
			name = def.Name
		}
		parts = append(parts, fmt.Sprintf("%dx %s", g.Count, name))
	}
	return fmt.Sprintf("Wave %d: %s", w.Number, strings.Join(parts, ", "))
}

// Maps returns every map definition.
func (c *Catalog) Maps() []MapDefinition {
	return append([]MapDefinition(nil), c.maps...)
}

// Map returns the map at index.
func (c *Catalog) Map(index int) (MapDefinition, error) {
	if index < 0 || index >= len(c.maps) {
		return MapDefinition{}, fmt.Errorf("%w: index %d of %d", ErrUnknownMap, index, len(c.maps))
	}
	return c.maps[index], nil
}

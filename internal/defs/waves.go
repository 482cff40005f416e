// internal/defs/waves.go
package defs

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// WaveGroup — (тип врага, количество) внутри волны.
type WaveGroup struct {
	EnemyID string `json:"enemy"`
	Count   int    `json:"count"`
}

// WaveDefinition описывает состав одной волны.
type WaveDefinition struct {
	Number           int         `json:"-"`
	Groups           []WaveGroup `json:"groups"`
	HealthMultiplier float64     `json:"health_multiplier,omitempty"` // 0 в JSON = 1
}

// Total — суммарное число врагов волны.
func (w WaveDefinition) Total() int {
	n := 0
	for _, g := range w.Groups {
		n += g.Count
	}
	return n
}

// Queue разворачивает группы в очередь ключей, по порядку групп.
func (w WaveDefinition) Queue() []string {
	queue := make([]string, 0, w.Total())
	for _, g := range w.Groups {
		for i := 0; i < g.Count; i++ {
			queue = append(queue, g.EnemyID)
		}
	}
	return queue
}

// EndlessEnv — переменные, доступные формулам бесконечных волн.
type EndlessEnv struct {
	Wave  int
	Scale int
}

type endlessGroupSrc struct {
	EnemyID string `json:"enemy"`
	Count   string `json:"count"`
}

type endlessBossSrc struct {
	EnemyID string `json:"enemy"`
	Every   int    `json:"every"`
	Count   string `json:"count"`
}

type endlessSrc struct {
	Scale            string            `json:"scale"`
	HealthMultiplier string            `json:"health_multiplier"`
	Groups           []endlessGroupSrc `json:"groups"`
	Boss             *endlessBossSrc   `json:"boss,omitempty"`
}

type endlessGroup struct {
	enemyID string
	count   *vm.Program
}

// EndlessRule выводит состав волн за пределами авторской таблицы.
type EndlessRule struct {
	scale     *vm.Program
	health    *vm.Program
	groups    []endlessGroup
	boss      *endlessGroup
	bossEvery int
}

func compileFormula(name, src string) (*vm.Program, error) {
	prog, err := expr.Compile(src, expr.Env(EndlessEnv{}), expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("compile endless formula %q: %w", name, err)
	}
	return prog, nil
}

func compileEndless(src endlessSrc) (*EndlessRule, error) {
	rule := &EndlessRule{}
	var err error
	if rule.scale, err = compileFormula("scale", src.Scale); err != nil {
		return nil, err
	}
	if rule.health, err = compileFormula("health_multiplier", src.HealthMultiplier); err != nil {
		return nil, err
	}
	for _, g := range src.Groups {
		prog, err := compileFormula(g.EnemyID, g.Count)
		if err != nil {
			return nil, err
		}
		rule.groups = append(rule.groups, endlessGroup{enemyID: g.EnemyID, count: prog})
	}
	if src.Boss != nil {
		if src.Boss.Every <= 0 {
			return nil, fmt.Errorf("endless boss: every must be positive, got %d", src.Boss.Every)
		}
		prog, err := compileFormula(src.Boss.EnemyID, src.Boss.Count)
		if err != nil {
			return nil, err
		}
		rule.boss = &endlessGroup{enemyID: src.Boss.EnemyID, count: prog}
		rule.bossEvery = src.Boss.Every
	}
	return rule, nil
}

func evalFormula(prog *vm.Program, env EndlessEnv) (float64, error) {
	out, err := expr.Run(prog, env)
	if err != nil {
		return 0, err
	}
	v, ok := out.(float64)
	if !ok {
		return 0, fmt.Errorf("formula returned %T", out)
	}
	return v, nil
}

// Wave вычисляет состав волны n.
func (r *EndlessRule) Wave(n int) (WaveDefinition, error) {
	env := EndlessEnv{Wave: n}
	scale, err := evalFormula(r.scale, env)
	if err != nil {
		return WaveDefinition{}, fmt.Errorf("endless wave %d scale: %w", n, err)
	}
	env.Scale = int(math.Floor(scale))

	health, err := evalFormula(r.health, env)
	if err != nil {
		return WaveDefinition{}, fmt.Errorf("endless wave %d health: %w", n, err)
	}

	wave := WaveDefinition{Number: n, HealthMultiplier: health}
	for _, g := range r.groups {
		count, err := evalFormula(g.count, env)
		if err != nil {
			return WaveDefinition{}, fmt.Errorf("endless wave %d %s: %w", n, g.enemyID, err)
		}
		if c := int(math.Floor(count)); c > 0 {
			wave.Groups = append(wave.Groups, WaveGroup{EnemyID: g.enemyID, Count: c})
		}
	}
	if r.boss != nil && n%r.bossEvery == 0 {
		count, err := evalFormula(r.boss.count, env)
		if err != nil {
			return WaveDefinition{}, fmt.Errorf("endless wave %d boss: %w", n, err)
		}
		// хотя бы один босс
		wave.Groups = append(wave.Groups, WaveGroup{EnemyID: r.boss.enemyID, Count: max(1, int(math.Floor(count)))})
	}
	return wave, nil
}

func (r *EndlessRule) enemyIDs() []string {
	ids := make([]string, 0, len(r.groups)+1)
	for _, g := range r.groups {
		ids = append(ids, g.enemyID)
	}
	if r.boss != nil {
		ids = append(ids, r.boss.enemyID)
	}
	return ids
}

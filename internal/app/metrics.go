// internal/app/metrics.go
package app

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"go-wave-defense/internal/event"
)

const instrumentationName = "go-wave-defense/internal/app"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// gameMetrics переводит игровые события в счётчики OpenTelemetry.
// Без установленного провайдера глобальный meter ничего не делает.
type gameMetrics struct {
	enemiesKilled  metric.Int64Counter
	enemiesEscaped metric.Int64Counter
	wavesCleared   metric.Int64Counter
	towersPlaced   metric.Int64Counter
	moneyEarned    metric.Int64Counter

	livesReg metric.Registration
	events   *event.Dispatcher
}

func newGameMetrics(g *Game) (*gameMetrics, error) {
	m := meter()
	gm := &gameMetrics{}

	var err error
	if gm.enemiesKilled, err = m.Int64Counter("wavedef.enemies.killed",
		metric.WithDescription("Enemies killed by towers")); err != nil {
		return nil, fmt.Errorf("creating killed counter: %w", err)
	}
	if gm.enemiesEscaped, err = m.Int64Counter("wavedef.enemies.escaped",
		metric.WithDescription("Enemies that reached the end of the path")); err != nil {
		return nil, fmt.Errorf("creating escaped counter: %w", err)
	}
	if gm.wavesCleared, err = m.Int64Counter("wavedef.waves.cleared",
		metric.WithDescription("Waves cleared")); err != nil {
		return nil, fmt.Errorf("creating waves counter: %w", err)
	}
	if gm.towersPlaced, err = m.Int64Counter("wavedef.towers.placed",
		metric.WithDescription("Towers placed, by type")); err != nil {
		return nil, fmt.Errorf("creating towers counter: %w", err)
	}
	if gm.moneyEarned, err = m.Int64Counter("wavedef.money.earned",
		metric.WithDescription("Money from kills and wave bonuses")); err != nil {
		return nil, fmt.Errorf("creating money counter: %w", err)
	}

	lives, err := m.Int64ObservableGauge("wavedef.lives",
		metric.WithDescription("Lives left"))
	if err != nil {
		return nil, fmt.Errorf("creating lives gauge: %w", err)
	}
	// колбэк держит ссылку на игру до close
	gm.livesReg, err = m.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		o.ObserveInt64(lives, int64(g.Lives()))
		return nil
	}, lives)
	if err != nil {
		return nil, fmt.Errorf("registering lives callback: %w", err)
	}
	return gm, nil
}

func (m *gameMetrics) OnEvent(e event.Event) {
	ctx := context.Background()
	switch data := e.Data.(type) {
	case event.EnemyKilledData:
		m.enemiesKilled.Add(ctx, 1, metric.WithAttributes(attribute.String("enemy.type", data.Type)))
		m.moneyEarned.Add(ctx, int64(data.Reward))
	case event.EnemyEscapedData:
		m.enemiesEscaped.Add(ctx, 1, metric.WithAttributes(attribute.String("enemy.type", data.Type)))
	case event.WaveClearedData:
		m.wavesCleared.Add(ctx, 1)
		m.moneyEarned.Add(ctx, int64(data.Bonus))
	case event.TowerPlacedData:
		m.towersPlaced.Add(ctx, 1, metric.WithAttributes(attribute.String("tower.type", data.Type)))
	}
}

var metricEvents = []event.EventType{event.EnemyKilled, event.EnemyEscaped, event.WaveCleared, event.TowerPlaced}

func (m *gameMetrics) subscribe(d *event.Dispatcher) {
	m.events = d
	for _, t := range metricEvents {
		d.Subscribe(t, m)
	}
}

// close снимает колбэк с meter и отписывается от событий. Повторный вызов ничего не делает.
func (m *gameMetrics) close() error {
	if m.events != nil {
		for _, t := range metricEvents {
			m.events.Unsubscribe(t, m)
		}
		m.events = nil
	}
	if m.livesReg == nil {
		return nil
	}
	err := m.livesReg.Unregister()
	m.livesReg = nil
	if err != nil {
		return fmt.Errorf("unregistering lives callback: %w", err)
	}
	return nil
}

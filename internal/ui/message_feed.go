// internal/ui/message_feed.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"go-wave-defense/internal/event"
)

var (
	infoMessageColor  = color.RGBA{236, 240, 241, 255}
	goodMessageColor  = color.RGBA{46, 204, 113, 255}
	warnMessageColor  = color.RGBA{243, 156, 18, 255}
	errorMessageColor = color.RGBA{231, 76, 60, 255}
)

type Message struct {
	Text  string
	Color color.RGBA
	TTL   int // тиков до исчезновения
}

// MessageFeed — лента последних событий игры. Подписывается на
// диспетчер через SubscribeAll, живёт в тиках кадра.
type MessageFeed struct {
	messages []Message
	max      int
	ttl      int
}

func NewMessageFeed(maxMessages, ttlTicks int) *MessageFeed {
	return &MessageFeed{max: maxMessages, ttl: ttlTicks}
}

// OnEvent реализует event.Listener.
func (f *MessageFeed) OnEvent(e event.Event) {
	text, clr, ok := formatEvent(e)
	if !ok {
		return
	}
	f.Push(text, clr)
}

// Push добавляет сообщение; самые старые вытесняются.
func (f *MessageFeed) Push(text string, clr color.RGBA) {
	f.messages = append(f.messages, Message{Text: text, Color: clr, TTL: f.ttl})
	if len(f.messages) > f.max {
		f.messages = f.messages[len(f.messages)-f.max:]
	}
}

// PushError показывает отказ действия игрока.
func (f *MessageFeed) PushError(err error) {
	f.Push(err.Error(), errorMessageColor)
}

func (f *MessageFeed) Update() {
	alive := f.messages[:0]
	for _, m := range f.messages {
		m.TTL--
		if m.TTL > 0 {
			alive = append(alive, m)
		}
	}
	f.messages = alive
}

func (f *MessageFeed) Messages() []Message {
	return f.messages
}

func (f *MessageFeed) Clear() {
	f.messages = nil
}

// formatEvent — текст события для ленты. Убийства и спавны не пишутся.
func formatEvent(e event.Event) (string, color.RGBA, bool) {
	switch d := e.Data.(type) {
	case event.WaveStartedData:
		return fmt.Sprintf("Wave %d: %d enemies incoming", d.Wave, d.Count), warnMessageColor, true
	case event.WaveClearedData:
		return fmt.Sprintf("Wave %d cleared! +$%d", d.Wave, d.Bonus), goodMessageColor, true
	case event.PlacementRejectedData:
		return "Can't place: " + d.Reason.Error(), errorMessageColor, true
	case event.GameOverData:
		return fmt.Sprintf("Game over after %d waves", d.WavesSurvived), errorMessageColor, true
	case event.EnemyEscapedData:
		return fmt.Sprintf("%s escaped! %d lives left", d.Type, d.LivesLeft), errorMessageColor, true
	case event.TowerPlacedData:
		return fmt.Sprintf("Built %s for $%d", d.Type, d.Cost), infoMessageColor, true
	case event.TowerUpgradedData:
		return fmt.Sprintf("Upgraded to level %d for $%d", d.Level, d.Cost), infoMessageColor, true
	case event.TowerSoldData:
		return fmt.Sprintf("Sold for $%d", d.Refund), infoMessageColor, true
	}
	return "", color.RGBA{}, false
}

// Draw рисует ленту снизу вверх от (x, y); новые сообщения внизу.
func (f *MessageFeed) Draw(screen *ebiten.Image, x, y float64) {
	for i := len(f.messages) - 1; i >= 0; i-- {
		m := f.messages[i]
		row := len(f.messages) - 1 - i
		DrawTextOutlined(screen, m.Text, x, y-float64(row*lineHeight), m.Color, color.Black, 1)
	}
}

package network

import (
	"sync"

	"github.com/bisarnacki/magog/pkg/api"
	"github.com/bisarnacki/magog/pkg/logger"
)

// Broadcaster занимается только рассылкой сообщений подписчикам
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: ID сессии -> Личный канал
	subscribers map[string]chan api.ServerResponse
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerResponse),
	}
}

// Register создает личный канал для сессии
func (b *Broadcaster) Register(session string) chan api.ServerResponse {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := b.subscribers[session]; ok {
		close(old)
	}

	ch := make(chan api.ServerResponse, 100)
	b.subscribers[session] = ch
	return ch
}

// Unregister удаляет подписчика
func (b *Broadcaster) Unregister(session string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[session]; ok {
		close(ch)
		delete(b.subscribers, session)
	}
}

// SendTo отправляет сообщение одной сессии (Unicast)
func (b *Broadcaster) SendTo(session string, msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch, ok := b.subscribers[session]; ok {
		select {
		case ch <- msg:
		default:
			logger.Log.WithField("session", session).Warn("Hub: channel full, message dropped")
		}
	}
}

// Broadcast отправляет всем подключённым сессиям
func (b *Broadcaster) Broadcast(msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
		}
	}
}

// HasSubscriber проверяет, подключена ли сессия
func (b *Broadcaster) HasSubscriber(session string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[session]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

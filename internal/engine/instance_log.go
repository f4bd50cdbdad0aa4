package engine

import (
	"fmt"
	"time"

	"github.com/bisarnacki/magog/internal/domain"
	"github.com/bisarnacki/magog/pkg/api"
	"github.com/bisarnacki/magog/pkg/logger"
	"github.com/sirupsen/logrus"
)

// AddLog добавляет лог в историю инстанса
func (i *Instance) AddLog(text, logType string) {
	i.logSeq++
	i.Logs = append(i.Logs, api.LogEntry{
		ID:        fmt.Sprintf("%d_%d", i.World.Tick(), i.logSeq),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
	logger.Log.WithFields(logrus.Fields{
		"tick":      i.World.Tick(),
		"component": "game_log",
		"log_type":  logType,
	}).Info(text)
}

// collectMsgs забирает сообщения мира: текст уходит в лог, остальное в события.
func (i *Instance) collectMsgs() {
	for _, m := range i.World.DrainMsgs() {
		if m.Kind == domain.MsgText {
			i.AddLog(m.Text, "INFO")
			continue
		}
		i.events = append(i.events, toEventView(m))
	}
}

func toEventView(m domain.Msg) api.EventView {
	ev := api.EventView{Kind: m.Kind.String()}
	if m.Kind == domain.MsgDamage {
		ev.EntityID = IDString(m.Entity)
		return ev
	}
	pos := toPosition(m.Loc)
	ev.Pos = &pos
	return ev
}

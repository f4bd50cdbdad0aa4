package domain

import "strings"

// ActionType - команда игрока, пришедшая по сети или из журнала.
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionStep
	ActionMelee
	ActionIdle
	ActionUseItem
	ActionZap
	ActionCast
	ActionPickUp
	ActionEquip
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":   ActionInit,
	"STEP":   ActionStep,
	"MELEE":  ActionMelee,
	"IDLE":   ActionIdle,
	"USE":    ActionUseItem,
	"ZAP":    ActionZap,
	"CAST":   ActionCast,
	"PICKUP": ActionPickUp,
	"EQUIP":  ActionEquip,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionInit:    "INIT",
	ActionStep:    "STEP",
	ActionMelee:   "MELEE",
	ActionIdle:    "IDLE",
	ActionUseItem: "USE",
	ActionZap:     "ZAP",
	ActionCast:    "CAST",
	ActionPickUp:  "PICKUP",
	ActionEquip:   "EQUIP",
}

// ParseAction конвертирует строку из JSON в ActionType, без учёта регистра.
func ParseAction(s string) ActionType {
	if val, ok := actionStringToCmd[strings.ToUpper(s)]; ok {
		return val
	}
	return ActionUnknown
}

func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// SpendsTurn - после команды мир продвигается на ход.
func (a ActionType) SpendsTurn() bool {
	return a != ActionInit && a != ActionUnknown
}

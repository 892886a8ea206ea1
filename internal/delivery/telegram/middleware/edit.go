package middleware

import (
	"gopkg.in/telebot.v3"
)

// EditOrSend edits the callback's message and falls back to a new message
// when the original can't be edited (too old, deleted, not modified).
func EditOrSend(c telebot.Context, text string, markup *telebot.ReplyMarkup) error {
	if markup != nil {
		if err := c.Edit(text, markup); err != nil {
			return c.Send(text, markup)
		}
		return nil
	}
	if err := c.Edit(text); err != nil {
		return c.Send(text)
	}
	return nil
}

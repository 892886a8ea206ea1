package telegram

import (
	"context"
	"log"
	"time"

	"gopkg.in/telebot.v3"
)

func NewBot(token string) (*telebot.Bot, error) {
	return telebot.NewBot(telebot.Settings{
		Token:  token,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
	})
}

// Run polls for updates until ctx is cancelled.
func Run(ctx context.Context, bot *telebot.Bot) error {
	go bot.Start()
	log.Println("[bot] Бот запущен!")
	<-ctx.Done()
	bot.Stop()
	log.Println("[bot] остановлен")
	return nil
}

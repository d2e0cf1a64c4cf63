package bot

import (
	"fmt"
	"log"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/siavashv/brokerage_intake_bot/internal/flow"
)

type BotService struct {
	botAPI      *tgbotapi.BotAPI
	machine     *flow.Machine
	store       flow.RecordStore
	sessions    *SessionManager
	adminChatID int64
}

func New(
	botAPI *tgbotapi.BotAPI,
	machine *flow.Machine,
	store flow.RecordStore,
	adminChatID int64,
) *BotService {
	return &BotService{
		botAPI:      botAPI,
		machine:     machine,
		store:       store,
		sessions:    NewSessionManager(),
		adminChatID: adminChatID,
	}
}

func (b *BotService) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.botAPI.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil || update.Message.From == nil || update.Message.Text == "" {
			continue
		}

		b.handleMessage(update.Message)
	}
}

func (b *BotService) handleMessage(message *tgbotapi.Message) {
	rid := uuid.New().String()
	chatID := message.Chat.ID
	userID := strconv.FormatInt(message.From.ID, 10)
	text := message.Text

	var (
		next  flow.Stage
		reply flow.Reply
		err   error
	)

	if text == "/start" {
		next, reply, err = b.machine.Start(userID)
	} else if stage, ok := b.sessions.Get(chatID); ok {
		next, reply, err = b.machine.Handle(userID, stage, text)
	} else {
		// Stage tracking lost (restart, or first contact without /start):
		// begin a fresh conversation. Fields stored earlier survive.
		log.Printf("[%s] no session for chat %d, starting over", rid, chatID)
		next, reply, err = b.machine.Start(userID)
	}

	if err != nil {
		// Store write failed: keep the current stage and send nothing, so
		// the field is never treated as accepted.
		log.Printf("[%s] handle message for chat %d: %v", rid, chatID, err)
		return
	}

	msg := tgbotapi.NewMessage(chatID, reply.Text)

	if len(reply.Choices) > 0 {
		var keyboard [][]tgbotapi.KeyboardButton
		for _, choice := range reply.Choices {
			keyboard = append(keyboard, tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton(choice),
			))
		}
		msg.ReplyMarkup = tgbotapi.NewReplyKeyboard(keyboard...)
	} else if reply.ClearChoices {
		msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	}

	if _, err := b.botAPI.Send(msg); err != nil {
		log.Printf("[%s] send to chat %d: %v", rid, chatID, err)
	}

	if next == flow.StageDone {
		b.sessions.Clear(chatID)
		b.notifyAdmin(rid, userID)
		return
	}

	b.sessions.Set(chatID, next)
}

// notifyAdmin forwards the completed record to the admin chat, if configured.
func (b *BotService) notifyAdmin(rid, userID string) {
	if b.adminChatID == 0 {
		return
	}

	record, err := b.store.Find(userID)
	if err != nil {
		log.Printf("[%s] load record for admin notice: %v", rid, err)
		return
	}

	if record == nil {
		return
	}

	text := fmt.Sprintf("درخواست جدید ثبت شد:\nنام: %s\nتلفن: %s\nدرخواست: %s",
		record.Name, record.Phone, record.Reason)

	if _, err := b.botAPI.Send(tgbotapi.NewMessage(b.adminChatID, text)); err != nil {
		log.Printf("[%s] send admin notice: %v", rid, err)
	}
}

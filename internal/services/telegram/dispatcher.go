package telegram

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/denisAlshanov/rustyreel/internal/services/dearrow"
	"github.com/denisAlshanov/rustyreel/internal/services/wisdom"
	"github.com/denisAlshanov/rustyreel/internal/services/youtube"
	"github.com/denisAlshanov/rustyreel/internal/utils"
)

const (
	CommandStart    = "start"
	CommandHelp     = "help"
	CommandWisdom   = "wisdom"
	CommandBranding = "branding"
)

// Commands is the command menu registered with Telegram.
var Commands = []tgbotapi.BotCommand{
	{Command: CommandWisdom, Description: "Dispenses ancient fox wisdom"},
	{Command: CommandBranding, Description: "Shows DeArrow titles and thumbnails for a YouTube video"},
	{Command: CommandHelp, Description: "Lists the available commands"},
}

const helpText = `Available commands:
/wisdom - dispenses ancient fox wisdom
/branding <youtube url or video ID> - shows the community titles and thumbnails from DeArrow
/help - shows this message`

const brandingUsage = "Usage: /branding <youtube url or video ID>\nFor example: /branding https://youtu.be/_u6f9beKbwg"

const lookupFailedText = "Could not fetch branding from DeArrow right now. Please try again later."

// DispatcherDeps groups the services a Dispatcher calls into.
type DispatcherDeps struct {
	Branding dearrow.BrandingClient
	Wisdom   *wisdom.Dispenser
	Cooldown *Cooldown
}

// Dispatcher routes chat commands to the wisdom dispenser and the DeArrow
// client and replies through a Sender.
type Dispatcher struct {
	sender   Sender
	username string
	branding dearrow.BrandingClient
	wisdom   *wisdom.Dispenser
	cooldown *Cooldown
}

func NewDispatcher(sender Sender, branding dearrow.BrandingClient, dispenser *wisdom.Dispenser, cooldown *Cooldown) *Dispatcher {
	return &Dispatcher{
		sender:   sender,
		branding: branding,
		wisdom:   dispenser,
		cooldown: cooldown,
	}
}

// SetUsername records the bot's own username so that commands addressed to
// other bots, like /wisdom@other_bot, are ignored.
func (d *Dispatcher) SetUsername(username string) {
	d.username = username
}

// addressedToUs reports whether msg is a bare command or names this bot
// after the @.
func (d *Dispatcher) addressedToUs(msg *tgbotapi.Message) bool {
	_, target, found := strings.Cut(msg.CommandWithAt(), "@")
	if !found {
		return true
	}
	return d.username != "" && strings.EqualFold(target, d.username)
}

// HandleUpdate processes a single update. Non-command messages and commands
// addressed to another bot are ignored.
func (d *Dispatcher) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || !msg.IsCommand() {
		return
	}
	if !d.addressedToUs(msg) {
		utils.LogDebug(ctx, "Ignoring command addressed to another bot", utils.Fields{
			"command": msg.CommandWithAt(),
		})
		return
	}

	fields := utils.Fields{
		"update_id": update.UpdateID,
		"chat_id":   msg.Chat.ID,
		"command":   msg.Command(),
	}
	if msg.From != nil {
		fields["user_id"] = msg.From.ID
	}
	utils.LogInfo(ctx, "Handling command", fields)

	var reply string
	switch msg.Command() {
	case CommandStart, CommandHelp:
		reply = helpText
	case CommandWisdom:
		reply = d.handleWisdom(msg)
	case CommandBranding:
		reply = d.handleBranding(ctx, msg)
	default:
		reply = fmt.Sprintf("Unknown command /%s\n\n%s", msg.Command(), helpText)
	}

	d.reply(ctx, msg, reply)
}

func (d *Dispatcher) handleWisdom(msg *tgbotapi.Message) string {
	userID := msg.Chat.ID
	if msg.From != nil {
		userID = msg.From.ID
	}

	if ok, wait := d.cooldown.Allow(userID); !ok {
		return fmt.Sprintf("The fox is still meditating. Try again in %d seconds.", int(math.Ceil(wait.Seconds())))
	}

	return d.wisdom.Dispense()
}

func (d *Dispatcher) handleBranding(ctx context.Context, msg *tgbotapi.Message) string {
	raw := strings.TrimSpace(msg.CommandArguments())
	if raw == "" {
		return brandingUsage
	}

	start := time.Now()
	id, res, err := d.branding.Lookup(ctx, raw)
	if err != nil {
		var parseErr *youtube.VideoIDParseError
		if errors.As(err, &parseErr) {
			utils.LogDebug(ctx, "Rejected branding input", utils.Fields{"input": parseErr.Input})
			return "Error: " + parseErr.Error()
		}
		utils.LogError(ctx, "DeArrow branding request failed", err, utils.Fields{"video_id": id.String()})
		return lookupFailedText
	}

	utils.LogInfo(ctx, "Fetched branding", utils.Fields{
		"video_id":   id.String(),
		"titles":     len(res.Titles),
		"thumbnails": len(res.Thumbnails),
		"duration":   time.Since(start).String(),
	})

	return FormatBranding(id, res)
}

func (d *Dispatcher) reply(ctx context.Context, msg *tgbotapi.Message, text string) {
	out := tgbotapi.NewMessage(msg.Chat.ID, text)
	out.ReplyToMessageID = msg.MessageID
	out.DisableWebPagePreview = true

	if _, err := d.sender.Send(out); err != nil {
		utils.LogError(ctx, "Failed to send reply", err, utils.Fields{"chat_id": msg.Chat.ID})
	}
}

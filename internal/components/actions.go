package components

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/blackmichael/explore-feed/internal/domain"
)

// ActionNotification is reported by the header's notification button.
const ActionNotification = "notification"

const menuActionPrefix = "menu:"

// ErrUnknownAction is returned by Dispatch for actions no component emits.
var ErrUnknownAction = errors.New("unknown action")

// MenuAction is the action reported by the menu button of the given post.
func MenuAction(postID int) string {
	return menuActionPrefix + strconv.Itoa(postID)
}

// Handlers are the press hooks a feed exposes to its host. Nil hooks are
// ignored.
type Handlers struct {
	OnNotificationPress func()
	OnMenuPress         func(postID int)
}

// HandlersFor adapts a domain.PressHandler.
func HandlersFor(h domain.PressHandler) Handlers {
	return Handlers{
		OnNotificationPress: h.NotificationPressed,
		OnMenuPress:         h.MenuPressed,
	}
}

// Dispatch routes an action string from a button node to its hook.
func (h Handlers) Dispatch(action string) error {
	switch {
	case action == ActionNotification:
		if h.OnNotificationPress != nil {
			h.OnNotificationPress()
		}
		return nil
	case strings.HasPrefix(action, menuActionPrefix):
		id, err := strconv.Atoi(strings.TrimPrefix(action, menuActionPrefix))
		if err != nil {
			return fmt.Errorf("%w: %q", ErrUnknownAction, action)
		}
		if h.OnMenuPress != nil {
			h.OnMenuPress(id)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
}

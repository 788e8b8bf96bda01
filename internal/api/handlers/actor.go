package handlers

import (
	"fmt"
	"net/http"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/api/middleware"
)

// ActorFromRequest формирует идентификатор действующего лица для audit-журнала
// Для запросов вне защищенных роутов действующим лицом считается система
func ActorFromRequest(r *http.Request) string {
	if userID, ok := middleware.UserIDFromContext(r.Context()); ok {
		return fmt.Sprintf("user:%d", userID)
	}
	return "system"
}

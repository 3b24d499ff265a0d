package auth

import (
	"net/http"
	"strings"

	"github.com/spotilike/go-client/api"
	interrors "github.com/spotilike/go-client/internal/errors"
)

// MaintenanceMessage is shown whenever the backend is unreachable or failing
// in a way the user cannot act on.
const MaintenanceMessage = "Service temporairement indisponible. Notre équipe effectue une maintenance pour améliorer votre expérience. Veuillez réessayer dans quelques instants."

const fallbackMessage = "Une erreur est survenue"

// technicalKeywords flag backend messages that leak infrastructure detail.
// Matched as case-insensitive substrings.
var technicalKeywords = []string{"database", "sql", "connection", "econnrefused", "timeout"}

// normalizeMessage maps a transport or backend failure to the single message
// shown to the user. Rules, in priority order: no response at all, HTTP 500,
// or a technical-sounding backend message all collapse to the maintenance
// message; anything else passes the backend message through verbatim.
func normalizeMessage(err error) string {
	var apiErr *api.Error
	if !interrors.As(err, &apiErr) {
		return MaintenanceMessage
	}
	if apiErr.NoResponse() || apiErr.Status == http.StatusInternalServerError {
		return MaintenanceMessage
	}

	message := apiErr.Message
	lowered := strings.ToLower(message)
	for _, keyword := range technicalKeywords {
		if strings.Contains(lowered, keyword) {
			return MaintenanceMessage
		}
	}

	if message == "" {
		return fallbackMessage
	}
	return message
}

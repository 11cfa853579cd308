package domain

import "time"

// Chat modela una conversación entre usuarios. SeenBy no está restringido
// a UserIDs: el conteo de notificaciones lo trata como conjunto aparte.
type Chat struct {
	ID          string    `json:"id"`
	UserIDs     []string  `json:"userIDs"`
	SeenBy      []string  `json:"seenBy"`
	LastMessage string    `json:"lastMessage,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

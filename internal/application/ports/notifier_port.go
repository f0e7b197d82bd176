package ports

import "context"

// Acciones notificadas a sistemas externos.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Tipos de registro notificados.
const (
	TypeMember    = "member"
	TypeChurch    = "church"
	TypeInventory = "inventory"
)

// Event cambio de un registro, publicado después de confirmar la escritura.
type Event struct {
	Action string
	Type   string
	Data   any
}

// Notifier define el puerto de salida para avisar cambios a sistemas externos
// (webhook, Kafka, auditoría). Los casos de uso lo tratan como best-effort:
// un error se registra en el log y no se propaga al llamador.
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}

// NotifyBestEffort llama al notifier si existe y devuelve el error para que el caller lo registre.
func NotifyBestEffort(ctx context.Context, n Notifier, action, typ string, data any) error {
	if n == nil {
		return nil
	}
	return n.Notify(ctx, Event{Action: action, Type: typ, Data: data})
}

// Invalidator lo implementan las cachés de lectura que deben descartarse tras una escritura.
type Invalidator interface {
	Invalidate()
}

type actorKey struct{}

// WithActor guarda en el contexto quién origina la escritura (email o id del usuario autenticado).
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext devuelve el actor guardado con WithActor, o "".
func ActorFromContext(ctx context.Context) string {
	s, _ := ctx.Value(actorKey{}).(string)
	return s
}

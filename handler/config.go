package handler

// Config holds adapter settings loaded from the environment.
type Config struct {
	MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" envDefault:"10485760"`
}

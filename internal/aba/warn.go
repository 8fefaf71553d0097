package aba

//go:generate mockgen -source=warn.go -destination=warner_mock.go -package=aba

// Warner receives non-fatal truncation warnings. *slog.Logger satisfies it.
type Warner interface {
	Warn(msg string, args ...any)
}

// NopWarner discards every warning.
type NopWarner struct{}

func (NopWarner) Warn(string, ...any) {}

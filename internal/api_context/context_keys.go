package api_context

import "context"

type ctxKey string

const (
	VideoIDKey  ctxKey = "videoID"
	MomentIDKey ctxKey = "momentID"
)

func VideoIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(VideoIDKey).(string)
	return id, ok
}

func MomentIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(MomentIDKey).(string)
	return id, ok
}

func WithVideoID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, VideoIDKey, id)
}

func WithMomentID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, MomentIDKey, id)
}

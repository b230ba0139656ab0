package api

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"devfort/nav"

	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
	"github.com/vmihailenco/msgpack/v5"
)

// Clients opt into msgpack payloads with this header. The envelope stays JSON;
// only the payload travels as Base64 msgpack.
const (
	BodyEncodingHeader = "X-Body-Encoding"
	EncodingMsgPack    = "msgpack"
)

// EncodedPayload carries a Base64-encoded msgpack value inside a JSON body
type EncodedPayload struct {
	Encoded string `json:"encoded"`
}

// EncodeMsgPack encodes v to Base64 msgpack.
// Encoding pipeline: value -> msgpack bytes -> Base64 string
func EncodeMsgPack(v any) (string, error) {
	b, err := msgpack.Marshal(v)
	if err != nil {
		return "", serr.Wrap(err, "failed to msgpack encode payload")
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// DecodeMsgPack reverses EncodeMsgPack into v
func DecodeMsgPack(encoded string, v any) error {
	if encoded == "" {
		return serr.New("empty msgpack payload")
	}
	b, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return serr.Wrap(err, "failed to decode base64 payload")
	}
	if err := msgpack.Unmarshal(b, v); err != nil {
		return serr.Wrap(err, "failed to unmarshal msgpack payload")
	}
	return nil
}

func usesMsgPack(ctx rweb.Context) bool {
	return ctx.Request().Header(BodyEncodingHeader) == EncodingMsgPack
}

// decodeEvent reads a forwarded event from a plain JSON body or a msgpack envelope
func decodeEvent(ctx rweb.Context) (nav.Event, error) {
	var ev nav.Event
	body := ctx.Request().Body()

	if !usesMsgPack(ctx) {
		if err := json.Unmarshal(body, &ev); err != nil {
			return ev, serr.Wrap(err, "failed to parse event")
		}
		return ev, nil
	}

	var env EncodedPayload
	if err := json.Unmarshal(body, &env); err != nil {
		return ev, serr.Wrap(err, "failed to parse event envelope")
	}
	if err := DecodeMsgPack(env.Encoded, &ev); err != nil {
		return ev, err
	}
	return ev, nil
}

// writeState answers with the navigation state in the encoding the client asked for
func writeState(ctx rweb.Context, st nav.State) error {
	if !usesMsgPack(ctx) {
		return writeSuccess(ctx, http.StatusOK, st)
	}

	encoded, err := EncodeMsgPack(st)
	if err != nil {
		return writeError(ctx, http.StatusInternalServerError, "failed to encode state")
	}
	return writeSuccess(ctx, http.StatusOK, EncodedPayload{Encoded: encoded})
}

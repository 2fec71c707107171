package client

// Every Bonusly response is wrapped in a uniform envelope:
//
//	{ "success": true,  "result": { ... } }
//	{ "success": false, "message": "..." }
//
// The decoder below is the single place this shape is interpreted.

// noMessage is the message used when a failed envelope carries none.
const noMessage = "no message"

type envelope[T any] struct {
	Success bool    `json:"success"`
	Message *string `json:"message"`
	Result  *T      `json:"result"`
}

// unwrap converts a decoded envelope into its payload or a classified
// error. The mapping is total over all four combinations of success and
// result/message presence: a success envelope without a result payload
// is a contract violation and surfaces as a decode error, never a panic.
func (e envelope[T]) unwrap() (T, error) {
	if !e.Success {
		var zero T
		msg := noMessage
		if e.Message != nil {
			msg = *e.Message
		}
		return zero, newAPIError(msg)
	}
	if e.Result == nil {
		var zero T
		return zero, newDecodeError(nil, "success envelope without result payload")
	}
	return *e.Result, nil
}

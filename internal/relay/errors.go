package relay

import "errors"

// ErrBlankText is returned by [Dispatcher.Dispatch] for text with nothing
// but whitespace, unless the user is entering a credential. Nothing is
// replied; transports reject the message.
var ErrBlankText = errors.New("blank message text")

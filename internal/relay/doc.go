// Package relay turns inbound user text into session transitions and
// backend calls.
//
// The [Dispatcher] recognizes the chat commands (/start, /connect, /cancel,
// /disconnect) and routes free text by the user's registration state: into
// the registration flow while registering, to the attached backend while
// connected. Every outcome, including every core error, reaches the user as
// a [models.Reply] through a [Replier]; transports decide how replies are
// delivered.
package relay

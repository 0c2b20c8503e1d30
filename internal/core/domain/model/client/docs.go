// Package client contains the Client aggregate: a registered party that may
// send or receive letters. Emails are case-normalized on the way in; a client
// can only be hard-deleted while no letter references it as sender or
// recipient.
package client

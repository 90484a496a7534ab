// Package library projects declared library settings onto the server's
// options payload.
//
// The projection is sparse: an advanced setting absent from the document is
// absent from the payload, so the server keeps whatever value it already has.
// Provider lists are ranked here as well — fetchers sort by ascending
// priority with stable ties, savers keep their declared order.
package library

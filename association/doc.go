// Package association binds the composite-key store to each CRM junction
// table. Every store embeds *repository.Store and adds names that read in
// terms of the two entities it links, plus the joins and primary-link
// helpers particular to that association.
//
// Importing the package registers every junction table with the database
// schema bootstrap.
package association

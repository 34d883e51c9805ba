// Package vendas provides the core of a single-user sales tracking
// application: a product catalog, an append-only sales ledger, report
// aggregation and page layout for PDF export.
//
// The core functionalities include:
//   - Catalog Management: Registering, listing and removing sellable
//     products, each with a name and a positive unit price.
//   - Sales Ledger: Recording immutable sales that snapshot the product's
//     price at the moment of sale, immune to later catalog changes.
//   - Report Aggregation: Joining ledger and catalog into per-sale subtotal
//     rows and a grand total, computed in exact decimal arithmetic.
//   - Document Pagination: Laying report rows out onto fixed-size pages
//     with repeated headers, producing positioned text instructions for a
//     rendering collaborator.
//
// Persistence is an injected Store collaborator (see store/); credential
// checking lives in the credential package. This package serves as the
// foundational logic for the `gv` command-line tool.
package vendas

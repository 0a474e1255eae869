// Package gateway composes the edge gateway process: the REST and GraphQL
// surfaces, the backend adapters they consume, and the shared HTTP server
// lifecycle.
//
// # Architecture
//
// The gateway is a protocol translation and fan-out layer. It owns no
// entity state: every inbound request maps to one or more RPC calls
// against the Order and Restaurant services, and mutations additionally
// fan out a best-effort domain event to the message bus.
//
//	┌──────────────┐   REST (chi)      ┌───────────────────┐
//	│  HTTP Client │ ────────────────▶ │                   │  gRPC   ┌────────────────┐
//	└──────────────┘                   │      Gateway      │ ──────▶ │ Order service  │
//	┌──────────────┐   POST /graphql   │  (this process)   │ ──────▶ │ Restaurant svc │
//	│  GQL Client  │ ────────────────▶ │                   │         └────────────────┘
//	└──────────────┘                   └─────────┬─────────┘
//	                                             │ best-effort publish
//	                                             ▼
//	                                       message bus (NATS)
//
// # Failure domains
//
// Backend failures are normalized by the adapters into the gateway error
// taxonomy (Unavailable, NotFound, Invalid, Internal). The REST surface
// maps kinds to HTTP status codes, the GraphQL surface to resolver errors
// with extensions codes. Bus failures are swallowed: a mutation's response
// reflects the RPC outcome only.
package gateway

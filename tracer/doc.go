// Package tracer owns the OpenTelemetry side of hooktrace: provider setup and
// the process-wide "currently active trace" lookup the span lifecycle engine
// consumes.
//
// # Architecture
//
// The package follows the "accept interfaces, return structs" Go idiom:
//   - TracerClient struct: concrete OpenTelemetry-backed implementation
//   - Source interface: the single capability the engine depends on
//   - Constructor returns *TracerClient (concrete type)
//   - FX module provides both *TracerClient and the Source interface
//
// # Transactions
//
// A transaction is one top-level timed unit of work, typically one page
// navigation or render cycle. StartTransaction opens a root span and records
// its context as the active trace; EndTransaction finishes it and clears the
// slot. While a transaction is active, ActiveTrace hands out its context so
// the engine can parent lifecycle spans under it. With no active transaction,
// ActiveTrace reports false and the engine silently creates no spans; that is
// expected behavior, not an error.
//
// # Basic Usage
//
//	client, err := tracer.NewClient(tracer.Config{
//		ServiceName:  "storefront",
//		AppEnv:       "production",
//		EnableExport: true,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx, span := client.StartTransaction(context.Background(), "navigation /checkout")
//	// ... host renders, hooktrace attaches lifecycle spans under the trace ...
//	client.EndTransaction()
//	_ = span
//
// # Export
//
// With Config.EnableExport set, spans are batched to an OTLP HTTP collector.
// Without it, the provider still runs so context propagation and span
// parenting work; spans just never leave the process. Retry, backoff, and
// sampling policy all belong to the collector pipeline, not this package.
package tracer

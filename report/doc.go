// Package report renders and publishes partitioning results.
//
// A Report carries the run configuration, the five quality scores and the
// streaming duration. It can be rendered as:
//
//   - text: a banner followed by one "name: value" line per score
//   - raw: a single tab-separated line, easy to append to result tables
//   - json: the full report, encoded with sonic
//
// NATSPublisher sends the JSON form to a NATS subject and/or stores it in a
// JetStream KV bucket.
package report

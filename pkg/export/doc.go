// Package export renders resolved license records for humans and tools.
//
// # Formats
//
//   - [FileExporter] writes one plain-text report per dependency into a
//     directory, named "{name}_{version}.txt" with dots in the version
//     replaced by underscores.
//   - [ConsoleExporter] prints one lipgloss table per dependency.
//   - [WriteJSON] / [ExportJSON] emit every dependency as a JSON array.
//
// The text formats share the same key/value layout built by [Rows]: the
// package fields first, one "licenses" row per license file, then any
// configured extra rows with blank values for manual review notes.
//
// # Status output
//
// Exporters never print to the process stdout directly. They write status
// lines such as "No dependencies to export" to an explicit [Recorder], which
// forwards to a writer and keeps a copy for later inspection.
package export

// Package services implements the driving ports on top of the driven ones.
//
// ReformService runs the fetch, format and write-back pipeline. HistoryService
// reads the run journal and restores earlier values. FormatService, NoteService
// and SettingsService are thin wrappers used by the CLI and MCP adapters.
package services

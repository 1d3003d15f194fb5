// Package autostart discovers the programs an operating system launches at
// login and removes them from the store they were registered in.
//
// On macOS the sources are launchd job files in the LaunchAgents and
// LaunchDaemons directories and the System Events login items. On Windows
// they are the Run key values under HKCU and HKLM and the files in the
// user's Startup folder. Every source produces the same StartupItem record,
// and a Dispatcher deletes a record according to its Kind.
package autostart

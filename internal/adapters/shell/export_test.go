package shell

// LaunchEnvironment exposes launchEnvironment for tests.
var LaunchEnvironment = launchEnvironment

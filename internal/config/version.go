package config

// Version contains build version.
var Version = "development"

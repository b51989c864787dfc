package internal

// Version is the current tangocho version
const Version = "0.1.0"

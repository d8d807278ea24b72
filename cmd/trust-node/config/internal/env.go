package internal

// EnvPrefix is a prefix of ENV variables related
// to trust node configuration.
const EnvPrefix = "trust_node"

// EnvSeparator is a section separator in ENV variables.
const EnvSeparator = "_"

package constants

const VERSION = "0.1.0"

const CLIUserAgent = "docvault-cli"

// DefaultServer is used when neither the environment nor the config file
// names an API base URL.
const DefaultServer = "http://localhost:4000"

const ServerEnvVar = "DOCVAULT_API_URL"
const LogLevelEnvVar = "DOCVAULT_LOG_LEVEL"
const CLIKeyEnvVar = "DOCVAULT_CLI_KEY"

const RequestIDHeader = "X-Request-ID"

const UploadFileField = "file"
const UploadFolderField = "folderId"
const UploadPublicField = "isPublic"

const KeySize int = 32
const NonceSize int = 24

package errors

// ErrorCode identifies an application error independently of its HTTP status
type ErrorCode int

const (
	ErrorCode_INTERNAL ErrorCode = iota + 1

	// Upload
	ErrorCode_UPLOAD_MISSING_FILE
	ErrorCode_UPLOAD_EMPTY_FILENAME
	ErrorCode_UPLOAD_UNSUPPORTED_FORMAT
	ErrorCode_UPLOAD_FILE_TOO_LARGE
	ErrorCode_UPLOAD_STORE_FAILED

	// Pipeline
	ErrorCode_AUDIO_CONVERSION_FAILED
	ErrorCode_AI_TRANSCRIPTION_FAILED
	ErrorCode_AI_SPEECH_UNINTELLIGIBLE
	ErrorCode_AI_SPEECH_SERVICE_FAILED
	ErrorCode_PROCESSING_FAILED

	// Transport
	ErrorCode_REQUEST_REJECTED
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_INTERNAL:                  "INTERNAL",
	ErrorCode_UPLOAD_MISSING_FILE:       "UPLOAD_MISSING_FILE",
	ErrorCode_UPLOAD_EMPTY_FILENAME:     "UPLOAD_EMPTY_FILENAME",
	ErrorCode_UPLOAD_UNSUPPORTED_FORMAT: "UPLOAD_UNSUPPORTED_FORMAT",
	ErrorCode_UPLOAD_FILE_TOO_LARGE:     "UPLOAD_FILE_TOO_LARGE",
	ErrorCode_UPLOAD_STORE_FAILED:       "UPLOAD_STORE_FAILED",
	ErrorCode_AUDIO_CONVERSION_FAILED:   "AUDIO_CONVERSION_FAILED",
	ErrorCode_AI_TRANSCRIPTION_FAILED:   "AI_TRANSCRIPTION_FAILED",
	ErrorCode_AI_SPEECH_UNINTELLIGIBLE:  "AI_SPEECH_UNINTELLIGIBLE",
	ErrorCode_AI_SPEECH_SERVICE_FAILED:  "AI_SPEECH_SERVICE_FAILED",
	ErrorCode_PROCESSING_FAILED:         "PROCESSING_FAILED",
	ErrorCode_REQUEST_REJECTED:          "REQUEST_REJECTED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

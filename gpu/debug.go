package gpu

import (
	"log"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
)

var (
	debugSources = map[uint32]string{
		gl.DEBUG_SOURCE_API:             "api",
		gl.DEBUG_SOURCE_APPLICATION:     "application",
		gl.DEBUG_SOURCE_OTHER:           "other",
		gl.DEBUG_SOURCE_SHADER_COMPILER: "shaderCompiler",
		gl.DEBUG_SOURCE_THIRD_PARTY:     "thirdParty",
		gl.DEBUG_SOURCE_WINDOW_SYSTEM:   "windowSystem",
	}

	debugSeverities = map[uint32]string{
		gl.DEBUG_SEVERITY_HIGH:         "high",
		gl.DEBUG_SEVERITY_MEDIUM:       "medium",
		gl.DEBUG_SEVERITY_LOW:          "low",
		gl.DEBUG_SEVERITY_NOTIFICATION: "notification",
	}

	debugTypes = map[uint32]string{
		gl.DEBUG_TYPE_ERROR:               "error",
		gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR: "deprecatedBehavior",
		gl.DEBUG_TYPE_MARKER:              "marker",
		gl.DEBUG_TYPE_OTHER:               "other",
		gl.DEBUG_TYPE_PERFORMANCE:         "performance",
		gl.DEBUG_TYPE_POP_GROUP:           "popGroup",
		gl.DEBUG_TYPE_PORTABILITY:         "portability",
		gl.DEBUG_TYPE_PUSH_GROUP:          "pushGroup",
		gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:  "undefinedBehavior",
	}
)

func lookup(names map[uint32]string, v uint32, fallback string) string {
	if name, ok := names[v]; ok {
		return name
	}
	return fallback
}

func glDebugMessage(
	source,
	gltype,
	id,
	severity uint32,
	length int32,
	message string,
	user unsafe.Pointer,
) {
	log.Printf("%v(%v): %v; %v\n",
		lookup(debugSources, source, "unknownSource"),
		lookup(debugSeverities, severity, "unknown"),
		lookup(debugTypes, gltype, "unknownType"),
		message,
	)
}

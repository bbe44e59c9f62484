package reader

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/achilleasa/go-raytrace/asset"
	"github.com/achilleasa/go-raytrace/asset/scene"
	"github.com/achilleasa/go-raytrace/log"
	core "github.com/achilleasa/go-raytrace/scene"
	"github.com/achilleasa/go-raytrace/types"
)

// Max nesting level for include directives.
const maxIncludeDepth = 16

type textSceneReader struct {
	logger log.Logger

	// The parsed scene.
	sc *scene.Scene

	// True once a camera statement has been parsed.
	hasCamera bool

	// An error stack that provides additional error information when
	// scene files include other files.
	errStack []string
}

// Create a new text scene reader.
func newTextReader() *textSceneReader {
	return &textSceneReader{
		logger:   log.New("text scene reader"),
		sc:       scene.New(core.NewCamera(45)),
		errStack: make([]string, 0),
	}
}

// Read scene definition.
func (r *textSceneReader) Read(sceneRes *asset.Resource) (*scene.Scene, error) {
	r.logger.Noticef(`parsing scene from "%s"`, sceneRes.Path())
	start := time.Now()

	err := r.parse(sceneRes)
	if err != nil {
		return nil, err
	}

	if !r.hasCamera {
		return nil, r.emitError(sceneRes.Path(), 0, "scene does not define a camera")
	}
	if r.sc.Objects.Len() == 0 {
		return nil, r.emitError(sceneRes.Path(), 0, "scene does not define any spheres")
	}

	r.logger.Noticef("parsed scene with %d objects in %d ms", r.sc.Objects.Len(), time.Since(start).Nanoseconds()/1e6)
	return r.sc, nil
}

// Generate an error message that also includes any data in the error stack.
func (r *textSceneReader) emitError(file string, line int, msgFormat string, args ...interface{}) error {
	msg := fmt.Sprintf(msgFormat, args...)

	var errMsg string
	if line > 0 {
		errMsg = fmt.Sprintf("[%s: %d] error: %s\n%s", file, line, msg, strings.Join(r.errStack, "\n"))
	} else {
		errMsg = fmt.Sprintf("[%s] error: %s\n%s", file, msg, strings.Join(r.errStack, "\n"))
	}

	return fmt.Errorf("%s", strings.Trim(errMsg, "\n"))
}

// Push a frame to the error stack.
func (r *textSceneReader) pushFrame(msg string) {
	r.errStack = append([]string{msg}, r.errStack...)
}

// Pop a frame from the error stack.
func (r *textSceneReader) popFrame() {
	r.errStack = r.errStack[1:]
}

// Parse scene statements from a resource.
func (r *textSceneReader) parse(res *asset.Resource) error {
	var lineNum int = 0

	scanner := bufio.NewScanner(res)
	for scanner.Scan() {
		lineNum++
		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 || strings.HasPrefix(lineTokens[0], "#") {
			continue
		}

		var err error
		switch lineTokens[0] {
		case "include":
			err = r.parseInclude(res, lineNum, lineTokens)
		case "camera":
			err = r.parseCamera(res, lineNum, lineTokens)
		case "material":
			err = r.parseMaterial(res, lineNum, lineTokens)
		case "sphere":
			err = r.parseSphere(res, lineNum, lineTokens)
		default:
			err = r.emitError(res.Path(), lineNum, "unsupported statement %q", lineTokens[0])
		}

		if err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return r.emitError(res.Path(), lineNum, "%s", err.Error())
	}
	return nil
}

// include <file>
func (r *textSceneReader) parseInclude(res *asset.Resource, lineNum int, lineTokens []string) error {
	if len(lineTokens) != 2 {
		return r.emitError(res.Path(), lineNum, `unsupported syntax for "include"; expected 1 argument; got %d`, len(lineTokens)-1)
	}
	if len(r.errStack) >= maxIncludeDepth {
		return r.emitError(res.Path(), lineNum, "max include depth (%d) exceeded", maxIncludeDepth)
	}

	incRes, err := asset.NewResource(lineTokens[1], res)
	if err != nil {
		return r.emitError(res.Path(), lineNum, "%s", err.Error())
	}
	defer incRes.Close()

	r.pushFrame(fmt.Sprintf("referenced from %s:%d [%s]", res.Path(), lineNum, lineTokens[0]))
	err = r.parse(incRes)
	r.popFrame()
	return err
}

// camera <eye x y z> <lookat x y z> <up x y z> <fov> <aperture>
func (r *textSceneReader) parseCamera(res *asset.Resource, lineNum int, lineTokens []string) error {
	if len(lineTokens) != 12 {
		return r.emitError(res.Path(), lineNum, `unsupported syntax for "camera"; expected 11 arguments; got %d`, len(lineTokens)-1)
	}

	values, err := r.parseFloats(res, lineNum, lineTokens[1:])
	if err != nil {
		return err
	}
	if values[9] <= 0 || values[9] >= 180 {
		return r.emitError(res.Path(), lineNum, "camera fov must be in (0, 180); got %v", values[9])
	}
	if values[10] < 0 {
		return r.emitError(res.Path(), lineNum, "camera aperture must be >= 0; got %v", values[10])
	}

	cam := r.sc.Camera
	cam.Eye = types.XYZ(values[0], values[1], values[2])
	cam.LookAt = types.XYZ(values[3], values[4], values[5])
	cam.Up = types.XYZ(values[6], values[7], values[8])
	cam.FOV = values[9]
	cam.Aperture = values[10]
	r.hasCamera = true
	return nil
}

// material <name> matte <r g b>
// material <name> metal <r g b> <blur>
// material <name> glass <r g b> <blur> <ior>
func (r *textSceneReader) parseMaterial(res *asset.Resource, lineNum int, lineTokens []string) error {
	if len(lineTokens) < 3 {
		return r.emitError(res.Path(), lineNum, `unsupported syntax for "material"; expected a name and a type`)
	}

	name, kind := lineTokens[1], lineTokens[2]
	if _, exists := r.sc.Materials[name]; exists {
		return r.emitError(res.Path(), lineNum, "duplicate material definition %q", name)
	}

	expArgs := map[string]int{"matte": 3, "metal": 4, "glass": 5}[kind]
	if expArgs == 0 {
		return r.emitError(res.Path(), lineNum, "unknown material type %q", kind)
	}
	if len(lineTokens)-3 != expArgs {
		return r.emitError(res.Path(), lineNum, `unsupported syntax for %q material; expected %d arguments; got %d`, kind, expArgs, len(lineTokens)-3)
	}

	values, err := r.parseFloats(res, lineNum, lineTokens[3:])
	if err != nil {
		return err
	}

	albedo := types.XYZ(values[0], values[1], values[2])
	var mat core.Material
	switch kind {
	case "matte":
		mat = core.NewMatte(albedo)
	case "metal":
		mat = core.NewMetal(albedo, values[3])
	case "glass":
		if values[4] <= 0 {
			return r.emitError(res.Path(), lineNum, "glass refractive index must be > 0; got %v", values[4])
		}
		mat = core.NewGlass(albedo, values[3], values[4])
	}

	r.sc.Materials[name] = mat
	return nil
}

// sphere <x y z> <radius> <material>
func (r *textSceneReader) parseSphere(res *asset.Resource, lineNum int, lineTokens []string) error {
	if len(lineTokens) != 6 {
		return r.emitError(res.Path(), lineNum, `unsupported syntax for "sphere"; expected 5 arguments; got %d`, len(lineTokens)-1)
	}

	values, err := r.parseFloats(res, lineNum, lineTokens[1:5])
	if err != nil {
		return err
	}
	if values[3] <= 0 {
		return r.emitError(res.Path(), lineNum, "sphere radius must be > 0; got %v", values[3])
	}

	mat, exists := r.sc.Materials[lineTokens[5]]
	if !exists {
		return r.emitError(res.Path(), lineNum, "undefined material %q", lineTokens[5])
	}

	r.sc.Objects.Add(core.NewSphere(types.XYZ(values[0], values[1], values[2]), values[3], mat))
	return nil
}

// Parse a list of float tokens.
func (r *textSceneReader) parseFloats(res *asset.Resource, lineNum int, tokens []string) ([]float64, error) {
	values := make([]float64, len(tokens))
	for index, token := range tokens {
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, r.emitError(res.Path(), lineNum, "could not parse %q as a number", token)
		}
		values[index] = v
	}
	return values, nil
}

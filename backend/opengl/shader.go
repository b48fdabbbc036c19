package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/glbind/render"
)

// Stage is a shader pipeline role.
type Stage uint32

const (
	VertexStage   Stage = gl.VERTEX_SHADER
	FragmentStage Stage = gl.FRAGMENT_SHADER
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return fmt.Sprintf("Stage(%d)", uint32(s))
}

// stageExts maps resource name extensions to pipeline stages, and also
// enumerates the files a program bundle consists of.
var stageExts = []struct {
	ext   string
	stage Stage
}{
	{".vert", VertexStage},
	{".frag", FragmentStage},
}

// StageError reports a resource whose shader stage cannot be inferred from
// its name.
type StageError struct {
	Name string
}

func (e *StageError) Error() string {
	return fmt.Sprintf("cannot determine shader stage for resource %s", e.Name)
}

// CompileError reports a failed shader compilation with the driver's
// diagnostic log.
type CompileError struct {
	Name string
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile shader %s: %s", e.Name, trimLog(e.Log))
}

// LinkError reports a failed program link with the driver's diagnostic log.
type LinkError struct {
	Name string
	Log  string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("link program %s: %s", e.Name, trimLog(e.Log))
}

// trimLog tidies a driver diagnostic for an error message: drivers
// NUL-terminate their logs and usually end them with a newline.
func trimLog(log string) string {
	return strings.TrimSpace(strings.Trim(log, "\x00"))
}

// StageFor classifies a shader resource name by its extension: .vert is the
// vertex stage, .frag the fragment stage.
func StageFor(name string) (Stage, error) {
	for _, se := range stageExts {
		if strings.HasSuffix(name, se.ext) {
			return se.stage, nil
		}
	}
	return 0, &StageError{Name: name}
}

// Shader owns one compiled shader object. Once linked into a Program it is
// no longer needed and may be deleted.
type Shader struct {
	id uint32
}

// CompileShader compiles source for the given stage. name is used only in
// diagnostics. A shader either compiles or is released again; there is no
// half-built state to leak.
func CompileShader(name, source string, stage Stage) (*Shader, error) {
	id := gl.CreateShader(uint32(stage))
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csources, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		log := shaderInfoLog(id)
		gl.DeleteShader(id)
		return nil, &CompileError{Name: name, Log: log}
	}
	return &Shader{id: id}, nil
}

// LoadShader loads and compiles one shader resource, inferring the stage
// from the resource name's extension. Failures name the resource and keep
// their cause: stage classification, load, or compile, whichever came first.
func LoadShader(loader render.Loader, name string) (*Shader, error) {
	stage, err := StageFor(name)
	if err != nil {
		return nil, err
	}
	source, err := loader.LoadText(name)
	if err != nil {
		return nil, err
	}
	return CompileShader(name, source, stage)
}

// Delete releases the shader object. Programs it was linked into are
// unaffected. Safe to call more than once.
func (s *Shader) Delete() {
	if s.id != 0 {
		gl.DeleteShader(s.id)
		s.id = 0
	}
}

// Program owns one linked shader program. A Program is either successfully
// linked or was never constructed.
type Program struct {
	id uint32
}

// LinkProgram links the shaders into one program. On success the shaders
// are detached and their owners may delete them independently; on failure
// the program name is released and the driver's log is returned.
func LinkProgram(name string, shaders ...*Shader) (*Program, error) {
	id := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(id, s.id)
	}
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := programInfoLog(id)
		gl.DeleteProgram(id)
		return nil, &LinkError{Name: name, Log: log}
	}

	for _, s := range shaders {
		gl.DetachShader(id, s.id)
	}
	return &Program{id: id}, nil
}

// LoadProgram builds a linked program from the resource pair name+".vert"
// and name+".frag". The constituent shaders are deleted before returning;
// only the linked program survives.
func LoadProgram(loader render.Loader, name string) (*Program, error) {
	shaders := make([]*Shader, 0, len(stageExts))
	defer func() {
		for _, s := range shaders {
			s.Delete()
		}
	}()

	for _, se := range stageExts {
		s, err := LoadShader(loader, name+se.ext)
		if err != nil {
			return nil, fmt.Errorf("program %s: %w", name, err)
		}
		shaders = append(shaders, s)
	}
	return LinkProgram(name, shaders...)
}

// Use activates the program for subsequent draw calls.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Delete releases the program. Safe to call more than once.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

func shaderInfoLog(id uint32) string {
	var length int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	// INFO_LOG_LENGTH counts the driver's NUL terminator.
	log := make([]byte, length)
	gl.GetShaderInfoLog(id, length, nil, &log[0])
	return string(log[:length-1])
}

func programInfoLog(id uint32) string {
	var length int32
	gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	log := make([]byte, length)
	gl.GetProgramInfoLog(id, length, nil, &log[0])
	return string(log[:length-1])
}

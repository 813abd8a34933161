package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Scene vertex shader: unit mesh scaled per draw and offset per instance.
const sceneVertSrc = `#version 410 core

layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec2 aUV;
layout(location = 3) in vec3 aOffset; // per instance

uniform mat4 uView;
uniform mat4 uProj;
uniform vec3 uScale;
uniform float uTexScale;

out vec3 vWorldPos;
out vec3 vNormal;
out vec2 vUV;

void main() {
    vec3 world = aOffset + aPos * uScale;
    vWorldPos = world;
    vNormal = aNormal;
    vUV = aUV * uTexScale;
    gl_Position = uProj * uView * vec4(world, 1.0);
}
` + "\x00"

// Scene fragment shader: Phong with a lantern at the eye and a beacon over
// the exit, both with distance falloff, plus distance fog.
const sceneFragSrc = `#version 410 core

uniform sampler2D uTex;
uniform vec3 uViewPos;
uniform vec3 uLanternPos;
uniform vec3 uLanternColor;
uniform vec3 uBeaconPos;
uniform vec3 uBeaconColor;
uniform float uAmbient;
uniform float uFalloff;
uniform vec3 uFogColor;
uniform float uFogDist;

in vec3 vWorldPos;
in vec3 vNormal;
in vec2 vUV;
out vec4 FragColor;

vec3 pointLight(vec3 pos, vec3 color, vec3 n, vec3 viewDir, vec3 albedo) {
    vec3 toLight = pos - vWorldPos;
    float dist = length(toLight);
    vec3 l = toLight / max(dist, 1e-4);
    float atten = 1.0 / (1.0 + uFalloff * dist * dist);

    float diff = max(dot(n, l), 0.0);
    vec3 h = reflect(-l, n);
    float spec = pow(max(dot(viewDir, h), 0.0), 24.0) * 0.25;
    return (albedo * diff + vec3(spec)) * color * atten;
}

void main() {
    vec3 albedo = texture(uTex, vUV).rgb;
    vec3 n = normalize(vNormal);
    vec3 viewDir = normalize(uViewPos - vWorldPos);

    vec3 col = albedo * uAmbient;
    col += pointLight(uLanternPos, uLanternColor, n, viewDir, albedo);
    col += pointLight(uBeaconPos, uBeaconColor, n, viewDir, albedo);

    float fog = clamp(length(uViewPos - vWorldPos) / uFogDist, 0.0, 1.0);
    FragColor = vec4(mix(col, uFogColor, fog * fog), 1.0);
}
` + "\x00"

// Lamp shaders: unlit solid colour for the exit beacon.
const lampVertSrc = `#version 410 core

layout(location = 0) in vec3 aPos;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProj;

void main() {
    gl_Position = uProj * uView * uModel * vec4(aPos, 1.0);
}
` + "\x00"

const lampFragSrc = `#version 410 core

uniform vec3 uColor;
out vec4 FragColor;

void main() {
    FragColor = vec4(uColor, 1.0);
}
` + "\x00"

// Post vertex shader: fullscreen triangle pair from a 0..1 quad.
const postVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
out vec2 vUV;

void main() {
    vUV = aPos;
    gl_Position = vec4(aPos * 2.0 - 1.0, 0.0, 1.0);
}
` + "\x00"

// Post fragment shader: the drunk wobble. Sways the image, ripples it and
// splits the colour channels; uStrength 0 is a plain copy.
const postFragSrc = `#version 410 core

uniform sampler2D uScene;
uniform float uTime;
uniform float uStrength;

in vec2 vUV;
out vec4 FragColor;

void main() {
    vec2 c = vUV - 0.5;
    float sway = sin(uTime * 0.7) * 0.02 * uStrength;
    float zoom = 1.0 - 0.03 * uStrength * (0.5 + 0.5 * sin(uTime * 0.45));
    vec2 uv = c * zoom;
    uv = vec2(uv.x * cos(sway) - uv.y * sin(sway), uv.x * sin(sway) + uv.y * cos(sway));
    uv += 0.5;
    uv.x += sin(vUV.y * 9.0 + uTime * 1.3) * 0.006 * uStrength;
    uv.y += cos(vUV.x * 7.0 + uTime * 1.1) * 0.005 * uStrength;

    vec2 split = vec2(0.006 * uStrength * sin(uTime * 0.9), 0.0);
    float r = texture(uScene, uv + split).r;
    float g = texture(uScene, uv).g;
    float b = texture(uScene, uv - split).b;
    FragColor = vec4(r, g, b, 1.0);
}
` + "\x00"

// Text vertex shader: screen-space textured quads for font rendering.
const textVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
layout(location = 2) in vec4 aColor;

uniform vec2 uResolution;

out vec2 vUV;
out vec4 vColor;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vUV = aUV;
    vColor = aColor;
}
` + "\x00"

// Text fragment shader: font atlas sampling with color tint.
const textFragSrc = `#version 410 core

uniform sampler2D uFontTex;

in vec2 vUV;
in vec4 vColor;
out vec4 FragColor;

void main() {
    vec4 t = texture(uFontTex, vUV);
    if (t.a < 0.01) discard;
    FragColor = vec4(t.rgb * vColor.rgb, t.a * vColor.a);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}

// uniform looks up a uniform location by name.
func uniform(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}

package renderer

// GLSL sources for the two programs: the lit mesh shader and the point
// sprite snow shader. Lighting is a simple lambert + emissive model with a
// fixed key light and up to MaxPointLights point lights.

const meshVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 uViewProj;
uniform mat4 uModel;

out vec3 vWorldPos;
out vec3 vNormal;

void main() {
	vec4 world = uModel * vec4(aPos, 1.0);
	vWorldPos = world.xyz;
	vNormal = mat3(uModel) * aNormal;
	gl_Position = uViewProj * world;
}
`

const meshFragmentShader = `
#version 410 core

in vec3 vWorldPos;
in vec3 vNormal;

uniform vec3 uBaseColor;
uniform vec3 uEmissive;
uniform float uEmissiveIntensity;
uniform float uOpacity;

uniform vec3 uKeyLightDir;
uniform vec3 uKeyLightColor;
uniform vec3 uAmbient;

uniform int uPointLightCount;
uniform vec3 uPointLightPos[16];
uniform vec3 uPointLightColor[16];
uniform float uPointLightRange[16];
uniform float uPointLightIntensity[16];

out vec4 FragColor;

void main() {
	vec3 n = normalize(vNormal);

	// Two-sided shading: thin surfaces like the star rim are visible from
	// both sides.
	float key = abs(dot(n, normalize(uKeyLightDir)));
	vec3 lit = uAmbient + uKeyLightColor * key;

	for (int i = 0; i < uPointLightCount; i++) {
		vec3 toLight = uPointLightPos[i] - vWorldPos;
		float dist = length(toLight);
		float atten = clamp(1.0 - dist / uPointLightRange[i], 0.0, 1.0);
		float diff = abs(dot(n, toLight / max(dist, 0.0001)));
		lit += uPointLightColor[i] * (diff * atten * atten * uPointLightIntensity[i]);
	}

	vec3 color = uBaseColor * lit + uEmissive * uEmissiveIntensity;
	FragColor = vec4(color, uOpacity);
}
`

const snowVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uViewProj;
uniform float uPointSize;

void main() {
	gl_Position = uViewProj * vec4(aPos, 1.0);
	gl_PointSize = uPointSize / max(gl_Position.w, 0.1);
}
`

const snowFragmentShader = `
#version 410 core

out vec4 FragColor;

void main() {
	// Round, soft-edged flake from the point sprite coords.
	vec2 p = gl_PointCoord * 2.0 - 1.0;
	float d = dot(p, p);
	if (d > 1.0) {
		discard;
	}
	FragColor = vec4(1.0, 1.0, 1.0, 0.8 * (1.0 - d));
}
`

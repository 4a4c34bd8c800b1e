package renderer

const bodyVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aUV;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;

out vec3 vNormal;
out vec2 vUV;

void main() {
	vNormal = mat3(uModel) * aNormal;
	vUV = aUV;
	gl_Position = uProjection * uView * uModel * vec4(aPos, 1.0);
}
`

const bodyFragmentShader = `
#version 410 core

in vec3 vNormal;
in vec2 vUV;

uniform vec3 uColor;
uniform bool uTextured;
uniform sampler2D uTexture;
uniform vec3 uLightDir;
uniform float uAmbient;

out vec4 FragColor;

void main() {
	vec3 base = uColor;
	if (uTextured) {
		base *= texture(uTexture, vUV).rgb;
	}
	float diffuse = max(dot(normalize(vNormal), normalize(uLightDir)), 0.0);
	FragColor = vec4(base * (uAmbient + (1.0 - uAmbient) * diffuse), 1.0);
}
`

const starVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uView;
uniform mat4 uProjection;
uniform float uSize;
uniform float uViewportHeight;

void main() {
	vec4 eye = uView * vec4(aPos, 1.0);
	gl_Position = uProjection * eye;
	gl_PointSize = max(1.0, uSize * uViewportHeight / max(-eye.z, 0.001));
}
`

const starFragmentShader = `
#version 410 core

out vec4 FragColor;

void main() {
	vec2 c = gl_PointCoord - vec2(0.5);
	if (dot(c, c) > 0.25) {
		discard;
	}
	FragColor = vec4(1.0);
}
`

const flatVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 2) in vec2 aUV;

uniform mat4 uTransform;

out vec2 vUV;

void main() {
	vUV = aUV;
	gl_Position = uTransform * vec4(aPos, 1.0);
}
`

const flatFragmentShader = `
#version 410 core

in vec2 vUV;

uniform vec4 uColor;
uniform bool uTextured;
uniform sampler2D uTexture;

out vec4 FragColor;

void main() {
	vec4 c = uColor;
	if (uTextured) {
		c *= texture(uTexture, vUV);
	}
	FragColor = c;
}
`

package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// cached holds the mesh and both materials for a primitive. Created lazily on first draw.
// texturedMtl is used when drawing with an albedo texture (same mesh, different material).
type cached struct {
	mesh        rl.Mesh
	mtl         rl.Material
	texturedMtl rl.Material
}

// Registry maps mesh names to mesh+material. Meshes are created on first use
// so that GPU resources are allocated after the window/OpenGL context exists.
type Registry struct {
	cache    map[Mesh]cached
	lit      rl.Shader
	textured rl.Shader
	loaded   bool
	viewPos  [3]float32 // camera position, set each frame for lighting
	lightDir [3]float32 // direction to light (normalized), set each frame
}

// NewRegistry returns a registry with no meshes. Each mesh is created on first draw.
func NewRegistry() *Registry {
	return &Registry{
		cache:    make(map[Mesh]cached),
		lightDir: [3]float32{0.5, 1, 0.5},
	}
}

// SetView sets camera position and direction-to-light for this frame. Call once per frame
// before drawing.
func (r *Registry) SetView(viewPos, lightDir [3]float32) {
	r.viewPos = viewPos
	r.lightDir = lightDir
}

const (
	sphereRings   = 16
	sphereSlices  = 16
	roundSlices   = 24
	planeSubdivsX = 1
	planeSubdivsZ = 1
)

func genMesh(m Mesh) (rl.Mesh, bool) {
	switch m {
	case Cube:
		return rl.GenMeshCube(1, 1, 1), true
	case Sphere:
		return rl.GenMeshSphere(0.5, sphereRings, sphereSlices), true
	case Cylinder:
		return rl.GenMeshCylinder(0.5, 1, roundSlices), true
	case Cone:
		return rl.GenMeshCone(0.5, 1, roundSlices), true
	case Plane:
		return rl.GenMeshPlane(1, 1, planeSubdivsX, planeSubdivsZ), true
	}
	return rl.Mesh{}, false
}

func (r *Registry) loadShaders() {
	if r.loaded {
		return
	}
	r.lit = rl.LoadShaderFromMemory(litVS, litFS)
	r.textured = rl.LoadShaderFromMemory(litVS, litTexturedFS)
	r.loaded = true
}

// ensure creates the mesh and materials for m if not yet cached.
func (r *Registry) ensure(m Mesh) (cached, bool) {
	if c, ok := r.cache[m]; ok {
		return c, true
	}
	mesh, ok := genMesh(m)
	if !ok {
		return cached{}, false
	}
	r.loadShaders()
	mtl := rl.LoadMaterialDefault()
	if rl.IsShaderValid(r.lit) {
		mtl.Shader = r.lit
	}
	texturedMtl := rl.LoadMaterialDefault()
	if rl.IsShaderValid(r.textured) {
		texturedMtl.Shader = r.textured
	}
	c := cached{mesh: mesh, mtl: mtl, texturedMtl: texturedMtl}
	r.cache[m] = c
	return c, true
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
uniform float emissive;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float NdotH = max(dot(N, H), 0.0);
  float spec = pow(NdotH, specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  vec3 lit = amb + diffuse + specular;
  finalColor = vec4(mix(lit, tint.rgb, emissive), tint.a);
}
`
	// litTexturedFS samples the albedo texture and multiplies it by the tint.
	litTexturedFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
uniform sampler2D albedoMap;
out vec4 finalColor;
void main() {
  vec4 texColor = texture(albedoMap, fragTexCoord);
  vec4 tint = texColor * colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float NdotH = max(dot(N, H), 0.0);
  float spec = pow(NdotH, specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
)

// Lighting shared by both shaders.
var (
	ambientColor = [4]float32{0.35, 0.35, 0.38, 1.0}
	lightColor   = [3]float32{1.0, 0.98, 0.95}
)

const (
	lightIntensity   = float32(0.7)
	specularPower    = float32(32.0)
	specularStrength = float32(0.2)
)

// setUniforms sets the lighting uniforms on shader (cgo-safe: local arrays).
func (r *Registry) setUniforms(shader rl.Shader, emissive float32) {
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := [3]float32{r.viewPos[0], r.viewPos[1], r.viewPos[2]}
	lightDir := [3]float32{r.lightDir[0], r.lightDir[1], r.lightDir[2]}
	amb := ambientColor
	col := lightColor
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightDir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, col[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{lightIntensity}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularPower"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{specularPower}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{specularStrength}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "emissive"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{emissive}, rl.ShaderUniformFloat)
	}
}

func setTint(mtl *rl.Material, tint rl.Color) {
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
}

// Draw draws mesh m with the given model transform and tint. emissive in [0, 1] blends the lit
// color toward the flat tint (1 = unlit, glowing). Must be called between BeginMode3D and EndMode3D.
// Unknown meshes are skipped.
func (r *Registry) Draw(m Mesh, transform rl.Matrix, tint rl.Color, emissive float32) {
	c, ok := r.ensure(m)
	if !ok {
		return
	}
	setTint(&c.mtl, tint)
	r.setUniforms(c.mtl.Shader, emissive)
	rl.DrawMesh(c.mesh, c.mtl, transform)
}

// DrawTextured draws mesh m with tex as albedo, multiplied by tint. An invalid texture falls back
// to Draw.
func (r *Registry) DrawTextured(m Mesh, transform rl.Matrix, tint rl.Color, tex rl.Texture2D) {
	if !rl.IsTextureValid(tex) {
		r.Draw(m, transform, tint, 0)
		return
	}
	c, ok := r.ensure(m)
	if !ok {
		return
	}
	rl.SetMaterialTexture(&c.texturedMtl, rl.MapAlbedo, tex)
	setTint(&c.texturedMtl, tint)
	r.setUniforms(c.texturedMtl.Shader, 0)
	rl.DrawMesh(c.mesh, c.texturedMtl, transform)
}

// Unload frees every cached mesh and the shaders. Call before closing the window.
func (r *Registry) Unload() {
	for m, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, m)
	}
	if r.loaded {
		rl.UnloadShader(r.lit)
		rl.UnloadShader(r.textured)
		r.loaded = false
	}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gl

// WebGL 1 constants.
const (
	// Clearing buffers
	DEPTH_BUFFER_BIT   Enum = 0x00000100
	STENCIL_BUFFER_BIT Enum = 0x00000400
	COLOR_BUFFER_BIT   Enum = 0x00004000

	// Rendering primitives
	POINTS         Enum = 0x0000
	LINES          Enum = 0x0001
	LINE_LOOP      Enum = 0x0002
	LINE_STRIP     Enum = 0x0003
	TRIANGLES      Enum = 0x0004
	TRIANGLE_STRIP Enum = 0x0005
	TRIANGLE_FAN   Enum = 0x0006

	// Blending
	ZERO                     Enum = 0
	ONE                      Enum = 1
	SRC_COLOR                Enum = 0x0300
	ONE_MINUS_SRC_COLOR      Enum = 0x0301
	SRC_ALPHA                Enum = 0x0302
	ONE_MINUS_SRC_ALPHA      Enum = 0x0303
	DST_ALPHA                Enum = 0x0304
	ONE_MINUS_DST_ALPHA      Enum = 0x0305
	DST_COLOR                Enum = 0x0306
	ONE_MINUS_DST_COLOR      Enum = 0x0307
	SRC_ALPHA_SATURATE       Enum = 0x0308
	CONSTANT_COLOR           Enum = 0x8001
	ONE_MINUS_CONSTANT_COLOR Enum = 0x8002
	CONSTANT_ALPHA           Enum = 0x8003
	ONE_MINUS_CONSTANT_ALPHA Enum = 0x8004
	FUNC_ADD                 Enum = 0x8006
	FUNC_SUBTRACT            Enum = 0x800A
	FUNC_REVERSE_SUBTRACT    Enum = 0x800B
	BLEND_EQUATION           Enum = 0x8009
	BLEND_EQUATION_RGB       Enum = 0x8009
	BLEND_EQUATION_ALPHA     Enum = 0x883D
	BLEND_DST_RGB            Enum = 0x80C8
	BLEND_SRC_RGB            Enum = 0x80C9
	BLEND_DST_ALPHA          Enum = 0x80CA
	BLEND_SRC_ALPHA          Enum = 0x80CB
	BLEND_COLOR              Enum = 0x8005

	// Buffers
	ARRAY_BUFFER                 Enum = 0x8892
	ELEMENT_ARRAY_BUFFER         Enum = 0x8893
	ARRAY_BUFFER_BINDING         Enum = 0x8894
	ELEMENT_ARRAY_BUFFER_BINDING Enum = 0x8895
	STREAM_DRAW                  Enum = 0x88E0
	STATIC_DRAW                  Enum = 0x88E4
	DYNAMIC_DRAW                 Enum = 0x88E8
	BUFFER_SIZE                  Enum = 0x8764
	BUFFER_USAGE                 Enum = 0x8765
	CURRENT_VERTEX_ATTRIB        Enum = 0x8626

	// Culling
	FRONT          Enum = 0x0404
	BACK           Enum = 0x0405
	FRONT_AND_BACK Enum = 0x0408
	CW             Enum = 0x0900
	CCW            Enum = 0x0901

	// Capabilities
	TEXTURE_2D               Enum = 0x0DE1
	CULL_FACE                Enum = 0x0B44
	BLEND                    Enum = 0x0BE2
	DITHER                   Enum = 0x0BD0
	STENCIL_TEST             Enum = 0x0B90
	DEPTH_TEST               Enum = 0x0B71
	SCISSOR_TEST             Enum = 0x0C11
	POLYGON_OFFSET_FILL      Enum = 0x8037
	SAMPLE_ALPHA_TO_COVERAGE Enum = 0x809E
	SAMPLE_COVERAGE          Enum = 0x80A0

	// Parameters
	LINE_WIDTH              Enum = 0x0B21
	CULL_FACE_MODE          Enum = 0x0B45
	FRONT_FACE              Enum = 0x0B46
	DEPTH_RANGE             Enum = 0x0B70
	DEPTH_WRITEMASK         Enum = 0x0B72
	DEPTH_CLEAR_VALUE       Enum = 0x0B73
	DEPTH_FUNC              Enum = 0x0B74
	STENCIL_CLEAR_VALUE     Enum = 0x0B91
	STENCIL_FUNC            Enum = 0x0B92
	STENCIL_VALUE_MASK      Enum = 0x0B93
	STENCIL_FAIL            Enum = 0x0B94
	STENCIL_PASS_DEPTH_FAIL Enum = 0x0B95
	STENCIL_PASS_DEPTH_PASS Enum = 0x0B96
	STENCIL_REF             Enum = 0x0B97
	STENCIL_WRITEMASK       Enum = 0x0B98
	VIEWPORT                Enum = 0x0BA2
	SCISSOR_BOX             Enum = 0x0C10
	COLOR_CLEAR_VALUE       Enum = 0x0C22
	COLOR_WRITEMASK         Enum = 0x0C23
	UNPACK_ALIGNMENT        Enum = 0x0CF5
	PACK_ALIGNMENT          Enum = 0x0D05
	MAX_TEXTURE_SIZE        Enum = 0x0D33
	MAX_VIEWPORT_DIMS       Enum = 0x0D3A
	VENDOR                  Enum = 0x1F00
	RENDERER                Enum = 0x1F01
	VERSION                 Enum = 0x1F02

	// Hints
	DONT_CARE            Enum = 0x1100
	FASTEST              Enum = 0x1101
	NICEST               Enum = 0x1102
	GENERATE_MIPMAP_HINT Enum = 0x8192

	// Data types
	BYTE           Enum = 0x1400
	UNSIGNED_BYTE  Enum = 0x1401
	SHORT          Enum = 0x1402
	UNSIGNED_SHORT Enum = 0x1403
	INT            Enum = 0x1404
	UNSIGNED_INT   Enum = 0x1405
	FLOAT          Enum = 0x1406

	// Pixel formats
	DEPTH_COMPONENT        Enum = 0x1902
	ALPHA                  Enum = 0x1906
	RGB                    Enum = 0x1907
	RGBA                   Enum = 0x1908
	LUMINANCE              Enum = 0x1909
	LUMINANCE_ALPHA        Enum = 0x190A
	UNSIGNED_SHORT_4_4_4_4 Enum = 0x8033
	UNSIGNED_SHORT_5_5_5_1 Enum = 0x8034
	UNSIGNED_SHORT_5_6_5   Enum = 0x8363

	// Shaders
	FRAGMENT_SHADER                  Enum = 0x8B30
	VERTEX_SHADER                    Enum = 0x8B31
	COMPILE_STATUS                   Enum = 0x8B81
	DELETE_STATUS                    Enum = 0x8B80
	LINK_STATUS                      Enum = 0x8B82
	VALIDATE_STATUS                  Enum = 0x8B83
	ATTACHED_SHADERS                 Enum = 0x8B85
	ACTIVE_UNIFORMS                  Enum = 0x8B86
	ACTIVE_ATTRIBUTES                Enum = 0x8B89
	SHADER_TYPE                      Enum = 0x8B4F
	SHADING_LANGUAGE_VERSION         Enum = 0x8B8C
	CURRENT_PROGRAM                  Enum = 0x8B8D
	MAX_VERTEX_ATTRIBS               Enum = 0x8869
	MAX_VERTEX_UNIFORM_VECTORS       Enum = 0x8DFB
	MAX_VARYING_VECTORS              Enum = 0x8DFC
	MAX_COMBINED_TEXTURE_IMAGE_UNITS Enum = 0x8B4D
	MAX_VERTEX_TEXTURE_IMAGE_UNITS   Enum = 0x8B4C
	MAX_TEXTURE_IMAGE_UNITS          Enum = 0x8872
	MAX_FRAGMENT_UNIFORM_VECTORS     Enum = 0x8DFD

	// Depth and stencil tests
	NEVER     Enum = 0x0200
	LESS      Enum = 0x0201
	EQUAL     Enum = 0x0202
	LEQUAL    Enum = 0x0203
	GREATER   Enum = 0x0204
	NOTEQUAL  Enum = 0x0205
	GEQUAL    Enum = 0x0206
	ALWAYS    Enum = 0x0207
	KEEP      Enum = 0x1E00
	REPLACE   Enum = 0x1E01
	INCR      Enum = 0x1E02
	DECR      Enum = 0x1E03
	INVERT    Enum = 0x150A
	INCR_WRAP Enum = 0x8507
	DECR_WRAP Enum = 0x8508

	// Textures
	NEAREST                     Enum = 0x2600
	LINEAR                      Enum = 0x2601
	NEAREST_MIPMAP_NEAREST      Enum = 0x2700
	LINEAR_MIPMAP_NEAREST       Enum = 0x2701
	NEAREST_MIPMAP_LINEAR       Enum = 0x2702
	LINEAR_MIPMAP_LINEAR        Enum = 0x2703
	TEXTURE_MAG_FILTER          Enum = 0x2800
	TEXTURE_MIN_FILTER          Enum = 0x2801
	TEXTURE_WRAP_S              Enum = 0x2802
	TEXTURE_WRAP_T              Enum = 0x2803
	TEXTURE                     Enum = 0x1702
	TEXTURE_BINDING_2D          Enum = 0x8069
	TEXTURE_CUBE_MAP            Enum = 0x8513
	TEXTURE_BINDING_CUBE_MAP    Enum = 0x8514
	TEXTURE_CUBE_MAP_POSITIVE_X Enum = 0x8515
	TEXTURE_CUBE_MAP_NEGATIVE_X Enum = 0x8516
	TEXTURE_CUBE_MAP_POSITIVE_Y Enum = 0x8517
	TEXTURE_CUBE_MAP_NEGATIVE_Y Enum = 0x8518
	TEXTURE_CUBE_MAP_POSITIVE_Z Enum = 0x8519
	TEXTURE_CUBE_MAP_NEGATIVE_Z Enum = 0x851A
	MAX_CUBE_MAP_TEXTURE_SIZE   Enum = 0x851C
	TEXTURE0                    Enum = 0x84C0
	TEXTURE1                    Enum = 0x84C1
	TEXTURE2                    Enum = 0x84C2
	TEXTURE3                    Enum = 0x84C3
	TEXTURE4                    Enum = 0x84C4
	TEXTURE5                    Enum = 0x84C5
	TEXTURE6                    Enum = 0x84C6
	TEXTURE7                    Enum = 0x84C7
	ACTIVE_TEXTURE              Enum = 0x84E0
	REPEAT                      Enum = 0x2901
	CLAMP_TO_EDGE               Enum = 0x812F
	MIRRORED_REPEAT             Enum = 0x8370

	// Uniform types
	FLOAT_VEC2   Enum = 0x8B50
	FLOAT_VEC3   Enum = 0x8B51
	FLOAT_VEC4   Enum = 0x8B52
	INT_VEC2     Enum = 0x8B53
	INT_VEC3     Enum = 0x8B54
	INT_VEC4     Enum = 0x8B55
	BOOL         Enum = 0x8B56
	FLOAT_MAT2   Enum = 0x8B5A
	FLOAT_MAT3   Enum = 0x8B5B
	FLOAT_MAT4   Enum = 0x8B5C
	SAMPLER_2D   Enum = 0x8B5E
	SAMPLER_CUBE Enum = 0x8B60

	// Vertex arrays
	VERTEX_ATTRIB_ARRAY_ENABLED        Enum = 0x8622
	VERTEX_ATTRIB_ARRAY_SIZE           Enum = 0x8623
	VERTEX_ATTRIB_ARRAY_STRIDE         Enum = 0x8624
	VERTEX_ATTRIB_ARRAY_TYPE           Enum = 0x8625
	VERTEX_ATTRIB_ARRAY_POINTER        Enum = 0x8645
	VERTEX_ATTRIB_ARRAY_NORMALIZED     Enum = 0x886A
	VERTEX_ATTRIB_ARRAY_BUFFER_BINDING Enum = 0x889F

	// Framebuffers and renderbuffers
	FRAMEBUFFER                               Enum = 0x8D40
	RENDERBUFFER                              Enum = 0x8D41
	RGBA4                                     Enum = 0x8056
	RGB5_A1                                   Enum = 0x8057
	RGB565                                    Enum = 0x8D62
	DEPTH_COMPONENT16                         Enum = 0x81A5
	STENCIL_INDEX8                            Enum = 0x8D48
	DEPTH_STENCIL                             Enum = 0x84F9
	RENDERBUFFER_WIDTH                        Enum = 0x8D42
	RENDERBUFFER_HEIGHT                       Enum = 0x8D43
	RENDERBUFFER_INTERNAL_FORMAT              Enum = 0x8D44
	FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE        Enum = 0x8CD0
	FRAMEBUFFER_ATTACHMENT_OBJECT_NAME        Enum = 0x8CD1
	FRAMEBUFFER_ATTACHMENT_TEXTURE_LEVEL      Enum = 0x8CD2
	COLOR_ATTACHMENT0                         Enum = 0x8CE0
	DEPTH_ATTACHMENT                          Enum = 0x8D00
	STENCIL_ATTACHMENT                        Enum = 0x8D20
	DEPTH_STENCIL_ATTACHMENT                  Enum = 0x821A
	NONE                                      Enum = 0
	FRAMEBUFFER_COMPLETE                      Enum = 0x8CD5
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT         Enum = 0x8CD6
	FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT Enum = 0x8CD7
	FRAMEBUFFER_INCOMPLETE_DIMENSIONS         Enum = 0x8CD9
	FRAMEBUFFER_UNSUPPORTED                   Enum = 0x8CDD
	FRAMEBUFFER_BINDING                       Enum = 0x8CA6
	RENDERBUFFER_BINDING                      Enum = 0x8CA7
	MAX_RENDERBUFFER_SIZE                     Enum = 0x84E8

	// Errors
	NO_ERROR                      Enum = 0
	INVALID_ENUM                  Enum = 0x0500
	INVALID_VALUE                 Enum = 0x0501
	INVALID_OPERATION             Enum = 0x0502
	OUT_OF_MEMORY                 Enum = 0x0505
	INVALID_FRAMEBUFFER_OPERATION Enum = 0x0506

	// WebGL-specific
	UNPACK_FLIP_Y_WEBGL                Enum = 0x9240
	UNPACK_PREMULTIPLY_ALPHA_WEBGL     Enum = 0x9241
	CONTEXT_LOST_WEBGL                 Enum = 0x9242
	UNPACK_COLORSPACE_CONVERSION_WEBGL Enum = 0x9243
	BROWSER_DEFAULT_WEBGL              Enum = 0x9244
)

// constants lists every constant in declaration order. Several names share
// a value (ZERO, POINTS, NONE and NO_ERROR are all 0).
var constants = []Constant{
	{"DEPTH_BUFFER_BIT", DEPTH_BUFFER_BIT},
	{"STENCIL_BUFFER_BIT", STENCIL_BUFFER_BIT},
	{"COLOR_BUFFER_BIT", COLOR_BUFFER_BIT},
	{"POINTS", POINTS},
	{"LINES", LINES},
	{"LINE_LOOP", LINE_LOOP},
	{"LINE_STRIP", LINE_STRIP},
	{"TRIANGLES", TRIANGLES},
	{"TRIANGLE_STRIP", TRIANGLE_STRIP},
	{"TRIANGLE_FAN", TRIANGLE_FAN},
	{"ZERO", ZERO},
	{"ONE", ONE},
	{"SRC_COLOR", SRC_COLOR},
	{"ONE_MINUS_SRC_COLOR", ONE_MINUS_SRC_COLOR},
	{"SRC_ALPHA", SRC_ALPHA},
	{"ONE_MINUS_SRC_ALPHA", ONE_MINUS_SRC_ALPHA},
	{"DST_ALPHA", DST_ALPHA},
	{"ONE_MINUS_DST_ALPHA", ONE_MINUS_DST_ALPHA},
	{"DST_COLOR", DST_COLOR},
	{"ONE_MINUS_DST_COLOR", ONE_MINUS_DST_COLOR},
	{"SRC_ALPHA_SATURATE", SRC_ALPHA_SATURATE},
	{"CONSTANT_COLOR", CONSTANT_COLOR},
	{"ONE_MINUS_CONSTANT_COLOR", ONE_MINUS_CONSTANT_COLOR},
	{"CONSTANT_ALPHA", CONSTANT_ALPHA},
	{"ONE_MINUS_CONSTANT_ALPHA", ONE_MINUS_CONSTANT_ALPHA},
	{"FUNC_ADD", FUNC_ADD},
	{"FUNC_SUBTRACT", FUNC_SUBTRACT},
	{"FUNC_REVERSE_SUBTRACT", FUNC_REVERSE_SUBTRACT},
	{"BLEND_EQUATION", BLEND_EQUATION},
	{"BLEND_EQUATION_RGB", BLEND_EQUATION_RGB},
	{"BLEND_EQUATION_ALPHA", BLEND_EQUATION_ALPHA},
	{"BLEND_DST_RGB", BLEND_DST_RGB},
	{"BLEND_SRC_RGB", BLEND_SRC_RGB},
	{"BLEND_DST_ALPHA", BLEND_DST_ALPHA},
	{"BLEND_SRC_ALPHA", BLEND_SRC_ALPHA},
	{"BLEND_COLOR", BLEND_COLOR},
	{"ARRAY_BUFFER", ARRAY_BUFFER},
	{"ELEMENT_ARRAY_BUFFER", ELEMENT_ARRAY_BUFFER},
	{"ARRAY_BUFFER_BINDING", ARRAY_BUFFER_BINDING},
	{"ELEMENT_ARRAY_BUFFER_BINDING", ELEMENT_ARRAY_BUFFER_BINDING},
	{"STREAM_DRAW", STREAM_DRAW},
	{"STATIC_DRAW", STATIC_DRAW},
	{"DYNAMIC_DRAW", DYNAMIC_DRAW},
	{"BUFFER_SIZE", BUFFER_SIZE},
	{"BUFFER_USAGE", BUFFER_USAGE},
	{"CURRENT_VERTEX_ATTRIB", CURRENT_VERTEX_ATTRIB},
	{"FRONT", FRONT},
	{"BACK", BACK},
	{"FRONT_AND_BACK", FRONT_AND_BACK},
	{"CW", CW},
	{"CCW", CCW},
	{"TEXTURE_2D", TEXTURE_2D},
	{"CULL_FACE", CULL_FACE},
	{"BLEND", BLEND},
	{"DITHER", DITHER},
	{"STENCIL_TEST", STENCIL_TEST},
	{"DEPTH_TEST", DEPTH_TEST},
	{"SCISSOR_TEST", SCISSOR_TEST},
	{"POLYGON_OFFSET_FILL", POLYGON_OFFSET_FILL},
	{"SAMPLE_ALPHA_TO_COVERAGE", SAMPLE_ALPHA_TO_COVERAGE},
	{"SAMPLE_COVERAGE", SAMPLE_COVERAGE},
	{"LINE_WIDTH", LINE_WIDTH},
	{"CULL_FACE_MODE", CULL_FACE_MODE},
	{"FRONT_FACE", FRONT_FACE},
	{"DEPTH_RANGE", DEPTH_RANGE},
	{"DEPTH_WRITEMASK", DEPTH_WRITEMASK},
	{"DEPTH_CLEAR_VALUE", DEPTH_CLEAR_VALUE},
	{"DEPTH_FUNC", DEPTH_FUNC},
	{"STENCIL_CLEAR_VALUE", STENCIL_CLEAR_VALUE},
	{"STENCIL_FUNC", STENCIL_FUNC},
	{"STENCIL_VALUE_MASK", STENCIL_VALUE_MASK},
	{"STENCIL_FAIL", STENCIL_FAIL},
	{"STENCIL_PASS_DEPTH_FAIL", STENCIL_PASS_DEPTH_FAIL},
	{"STENCIL_PASS_DEPTH_PASS", STENCIL_PASS_DEPTH_PASS},
	{"STENCIL_REF", STENCIL_REF},
	{"STENCIL_WRITEMASK", STENCIL_WRITEMASK},
	{"VIEWPORT", VIEWPORT},
	{"SCISSOR_BOX", SCISSOR_BOX},
	{"COLOR_CLEAR_VALUE", COLOR_CLEAR_VALUE},
	{"COLOR_WRITEMASK", COLOR_WRITEMASK},
	{"UNPACK_ALIGNMENT", UNPACK_ALIGNMENT},
	{"PACK_ALIGNMENT", PACK_ALIGNMENT},
	{"MAX_TEXTURE_SIZE", MAX_TEXTURE_SIZE},
	{"MAX_VIEWPORT_DIMS", MAX_VIEWPORT_DIMS},
	{"VENDOR", VENDOR},
	{"RENDERER", RENDERER},
	{"VERSION", VERSION},
	{"DONT_CARE", DONT_CARE},
	{"FASTEST", FASTEST},
	{"NICEST", NICEST},
	{"GENERATE_MIPMAP_HINT", GENERATE_MIPMAP_HINT},
	{"BYTE", BYTE},
	{"UNSIGNED_BYTE", UNSIGNED_BYTE},
	{"SHORT", SHORT},
	{"UNSIGNED_SHORT", UNSIGNED_SHORT},
	{"INT", INT},
	{"UNSIGNED_INT", UNSIGNED_INT},
	{"FLOAT", FLOAT},
	{"DEPTH_COMPONENT", DEPTH_COMPONENT},
	{"ALPHA", ALPHA},
	{"RGB", RGB},
	{"RGBA", RGBA},
	{"LUMINANCE", LUMINANCE},
	{"LUMINANCE_ALPHA", LUMINANCE_ALPHA},
	{"UNSIGNED_SHORT_4_4_4_4", UNSIGNED_SHORT_4_4_4_4},
	{"UNSIGNED_SHORT_5_5_5_1", UNSIGNED_SHORT_5_5_5_1},
	{"UNSIGNED_SHORT_5_6_5", UNSIGNED_SHORT_5_6_5},
	{"FRAGMENT_SHADER", FRAGMENT_SHADER},
	{"VERTEX_SHADER", VERTEX_SHADER},
	{"COMPILE_STATUS", COMPILE_STATUS},
	{"DELETE_STATUS", DELETE_STATUS},
	{"LINK_STATUS", LINK_STATUS},
	{"VALIDATE_STATUS", VALIDATE_STATUS},
	{"ATTACHED_SHADERS", ATTACHED_SHADERS},
	{"ACTIVE_UNIFORMS", ACTIVE_UNIFORMS},
	{"ACTIVE_ATTRIBUTES", ACTIVE_ATTRIBUTES},
	{"SHADER_TYPE", SHADER_TYPE},
	{"SHADING_LANGUAGE_VERSION", SHADING_LANGUAGE_VERSION},
	{"CURRENT_PROGRAM", CURRENT_PROGRAM},
	{"MAX_VERTEX_ATTRIBS", MAX_VERTEX_ATTRIBS},
	{"MAX_VERTEX_UNIFORM_VECTORS", MAX_VERTEX_UNIFORM_VECTORS},
	{"MAX_VARYING_VECTORS", MAX_VARYING_VECTORS},
	{"MAX_COMBINED_TEXTURE_IMAGE_UNITS", MAX_COMBINED_TEXTURE_IMAGE_UNITS},
	{"MAX_VERTEX_TEXTURE_IMAGE_UNITS", MAX_VERTEX_TEXTURE_IMAGE_UNITS},
	{"MAX_TEXTURE_IMAGE_UNITS", MAX_TEXTURE_IMAGE_UNITS},
	{"MAX_FRAGMENT_UNIFORM_VECTORS", MAX_FRAGMENT_UNIFORM_VECTORS},
	{"NEVER", NEVER},
	{"LESS", LESS},
	{"EQUAL", EQUAL},
	{"LEQUAL", LEQUAL},
	{"GREATER", GREATER},
	{"NOTEQUAL", NOTEQUAL},
	{"GEQUAL", GEQUAL},
	{"ALWAYS", ALWAYS},
	{"KEEP", KEEP},
	{"REPLACE", REPLACE},
	{"INCR", INCR},
	{"DECR", DECR},
	{"INVERT", INVERT},
	{"INCR_WRAP", INCR_WRAP},
	{"DECR_WRAP", DECR_WRAP},
	{"NEAREST", NEAREST},
	{"LINEAR", LINEAR},
	{"NEAREST_MIPMAP_NEAREST", NEAREST_MIPMAP_NEAREST},
	{"LINEAR_MIPMAP_NEAREST", LINEAR_MIPMAP_NEAREST},
	{"NEAREST_MIPMAP_LINEAR", NEAREST_MIPMAP_LINEAR},
	{"LINEAR_MIPMAP_LINEAR", LINEAR_MIPMAP_LINEAR},
	{"TEXTURE_MAG_FILTER", TEXTURE_MAG_FILTER},
	{"TEXTURE_MIN_FILTER", TEXTURE_MIN_FILTER},
	{"TEXTURE_WRAP_S", TEXTURE_WRAP_S},
	{"TEXTURE_WRAP_T", TEXTURE_WRAP_T},
	{"TEXTURE", TEXTURE},
	{"TEXTURE_BINDING_2D", TEXTURE_BINDING_2D},
	{"TEXTURE_CUBE_MAP", TEXTURE_CUBE_MAP},
	{"TEXTURE_BINDING_CUBE_MAP", TEXTURE_BINDING_CUBE_MAP},
	{"TEXTURE_CUBE_MAP_POSITIVE_X", TEXTURE_CUBE_MAP_POSITIVE_X},
	{"TEXTURE_CUBE_MAP_NEGATIVE_X", TEXTURE_CUBE_MAP_NEGATIVE_X},
	{"TEXTURE_CUBE_MAP_POSITIVE_Y", TEXTURE_CUBE_MAP_POSITIVE_Y},
	{"TEXTURE_CUBE_MAP_NEGATIVE_Y", TEXTURE_CUBE_MAP_NEGATIVE_Y},
	{"TEXTURE_CUBE_MAP_POSITIVE_Z", TEXTURE_CUBE_MAP_POSITIVE_Z},
	{"TEXTURE_CUBE_MAP_NEGATIVE_Z", TEXTURE_CUBE_MAP_NEGATIVE_Z},
	{"MAX_CUBE_MAP_TEXTURE_SIZE", MAX_CUBE_MAP_TEXTURE_SIZE},
	{"TEXTURE0", TEXTURE0},
	{"TEXTURE1", TEXTURE1},
	{"TEXTURE2", TEXTURE2},
	{"TEXTURE3", TEXTURE3},
	{"TEXTURE4", TEXTURE4},
	{"TEXTURE5", TEXTURE5},
	{"TEXTURE6", TEXTURE6},
	{"TEXTURE7", TEXTURE7},
	{"ACTIVE_TEXTURE", ACTIVE_TEXTURE},
	{"REPEAT", REPEAT},
	{"CLAMP_TO_EDGE", CLAMP_TO_EDGE},
	{"MIRRORED_REPEAT", MIRRORED_REPEAT},
	{"FLOAT_VEC2", FLOAT_VEC2},
	{"FLOAT_VEC3", FLOAT_VEC3},
	{"FLOAT_VEC4", FLOAT_VEC4},
	{"INT_VEC2", INT_VEC2},
	{"INT_VEC3", INT_VEC3},
	{"INT_VEC4", INT_VEC4},
	{"BOOL", BOOL},
	{"FLOAT_MAT2", FLOAT_MAT2},
	{"FLOAT_MAT3", FLOAT_MAT3},
	{"FLOAT_MAT4", FLOAT_MAT4},
	{"SAMPLER_2D", SAMPLER_2D},
	{"SAMPLER_CUBE", SAMPLER_CUBE},
	{"VERTEX_ATTRIB_ARRAY_ENABLED", VERTEX_ATTRIB_ARRAY_ENABLED},
	{"VERTEX_ATTRIB_ARRAY_SIZE", VERTEX_ATTRIB_ARRAY_SIZE},
	{"VERTEX_ATTRIB_ARRAY_STRIDE", VERTEX_ATTRIB_ARRAY_STRIDE},
	{"VERTEX_ATTRIB_ARRAY_TYPE", VERTEX_ATTRIB_ARRAY_TYPE},
	{"VERTEX_ATTRIB_ARRAY_POINTER", VERTEX_ATTRIB_ARRAY_POINTER},
	{"VERTEX_ATTRIB_ARRAY_NORMALIZED", VERTEX_ATTRIB_ARRAY_NORMALIZED},
	{"VERTEX_ATTRIB_ARRAY_BUFFER_BINDING", VERTEX_ATTRIB_ARRAY_BUFFER_BINDING},
	{"FRAMEBUFFER", FRAMEBUFFER},
	{"RENDERBUFFER", RENDERBUFFER},
	{"RGBA4", RGBA4},
	{"RGB5_A1", RGB5_A1},
	{"RGB565", RGB565},
	{"DEPTH_COMPONENT16", DEPTH_COMPONENT16},
	{"STENCIL_INDEX8", STENCIL_INDEX8},
	{"DEPTH_STENCIL", DEPTH_STENCIL},
	{"RENDERBUFFER_WIDTH", RENDERBUFFER_WIDTH},
	{"RENDERBUFFER_HEIGHT", RENDERBUFFER_HEIGHT},
	{"RENDERBUFFER_INTERNAL_FORMAT", RENDERBUFFER_INTERNAL_FORMAT},
	{"FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE", FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE},
	{"FRAMEBUFFER_ATTACHMENT_OBJECT_NAME", FRAMEBUFFER_ATTACHMENT_OBJECT_NAME},
	{"FRAMEBUFFER_ATTACHMENT_TEXTURE_LEVEL", FRAMEBUFFER_ATTACHMENT_TEXTURE_LEVEL},
	{"COLOR_ATTACHMENT0", COLOR_ATTACHMENT0},
	{"DEPTH_ATTACHMENT", DEPTH_ATTACHMENT},
	{"STENCIL_ATTACHMENT", STENCIL_ATTACHMENT},
	{"DEPTH_STENCIL_ATTACHMENT", DEPTH_STENCIL_ATTACHMENT},
	{"NONE", NONE},
	{"FRAMEBUFFER_COMPLETE", FRAMEBUFFER_COMPLETE},
	{"FRAMEBUFFER_INCOMPLETE_ATTACHMENT", FRAMEBUFFER_INCOMPLETE_ATTACHMENT},
	{"FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT", FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT},
	{"FRAMEBUFFER_INCOMPLETE_DIMENSIONS", FRAMEBUFFER_INCOMPLETE_DIMENSIONS},
	{"FRAMEBUFFER_UNSUPPORTED", FRAMEBUFFER_UNSUPPORTED},
	{"FRAMEBUFFER_BINDING", FRAMEBUFFER_BINDING},
	{"RENDERBUFFER_BINDING", RENDERBUFFER_BINDING},
	{"MAX_RENDERBUFFER_SIZE", MAX_RENDERBUFFER_SIZE},
	{"NO_ERROR", NO_ERROR},
	{"INVALID_ENUM", INVALID_ENUM},
	{"INVALID_VALUE", INVALID_VALUE},
	{"INVALID_OPERATION", INVALID_OPERATION},
	{"OUT_OF_MEMORY", OUT_OF_MEMORY},
	{"INVALID_FRAMEBUFFER_OPERATION", INVALID_FRAMEBUFFER_OPERATION},
	{"UNPACK_FLIP_Y_WEBGL", UNPACK_FLIP_Y_WEBGL},
	{"UNPACK_PREMULTIPLY_ALPHA_WEBGL", UNPACK_PREMULTIPLY_ALPHA_WEBGL},
	{"CONTEXT_LOST_WEBGL", CONTEXT_LOST_WEBGL},
	{"UNPACK_COLORSPACE_CONVERSION_WEBGL", UNPACK_COLORSPACE_CONVERSION_WEBGL},
	{"BROWSER_DEFAULT_WEBGL", BROWSER_DEFAULT_WEBGL},
}

// Constants returns the name/value table of every WebGL 1 constant, in
// declaration order. The returned slice is a copy.
func Constants() []Constant {
	out := make([]Constant, len(constants))
	copy(out, constants)
	return out
}

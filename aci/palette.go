package aci

// palette 是标准 ACI 索引色表，下标 i 对应颜色号 i+1 (1..255)。
// 只读，包外不可见。
var palette = [255][3]uint8{
	{0xFF, 0x00, 0x00}, // 1
	{0xFF, 0xFF, 0x00}, // 2
	{0x00, 0xFF, 0x00}, // 3
	{0x00, 0xFF, 0xFF}, // 4
	{0x00, 0x00, 0xFF}, // 5
	{0xFF, 0x00, 0xFF}, // 6
	{0xFF, 0xFF, 0xFF}, // 7
	{0x41, 0x41, 0x41}, // 8
	{0x80, 0x80, 0x80}, // 9
	{0xFF, 0x00, 0x00}, // 10
	{0xFF, 0x7F, 0x7F}, // 11
	{0xCC, 0x00, 0x00}, // 12
	{0xCC, 0x66, 0x66}, // 13
	{0x99, 0x00, 0x00}, // 14
	{0x99, 0x4C, 0x4C}, // 15
	{0x7F, 0x00, 0x00}, // 16
	{0x7F, 0x3F, 0x3F}, // 17
	{0x4C, 0x00, 0x00}, // 18
	{0x4C, 0x26, 0x26}, // 19
	{0xFF, 0x3F, 0x00}, // 20
	{0xFF, 0x9F, 0x7F}, // 21
	{0xCC, 0x33, 0x00}, // 22
	{0xCC, 0x7F, 0x66}, // 23
	{0x99, 0x26, 0x00}, // 24
	{0x99, 0x5F, 0x4C}, // 25
	{0x7F, 0x1F, 0x00}, // 26
	{0x7F, 0x4F, 0x3F}, // 27
	{0x4C, 0x13, 0x00}, // 28
	{0x4C, 0x2F, 0x26}, // 29
	{0xFF, 0x7F, 0x00}, // 30
	{0xFF, 0xBF, 0x7F}, // 31
	{0xCC, 0x66, 0x00}, // 32
	{0xCC, 0x99, 0x66}, // 33
	{0x99, 0x4C, 0x00}, // 34
	{0x99, 0x72, 0x4C}, // 35
	{0x7F, 0x3F, 0x00}, // 36
	{0x7F, 0x5F, 0x3F}, // 37
	{0x4C, 0x26, 0x00}, // 38
	{0x4C, 0x39, 0x26}, // 39
	{0xFF, 0xBF, 0x00}, // 40
	{0xFF, 0xDF, 0x7F}, // 41
	{0xCC, 0x99, 0x00}, // 42
	{0xCC, 0xB2, 0x66}, // 43
	{0x99, 0x72, 0x00}, // 44
	{0x99, 0x85, 0x4C}, // 45
	{0x7F, 0x5F, 0x00}, // 46
	{0x7F, 0x6F, 0x3F}, // 47
	{0x4C, 0x39, 0x00}, // 48
	{0x4C, 0x42, 0x26}, // 49
	{0xFF, 0xFF, 0x00}, // 50
	{0xFF, 0xFF, 0x7F}, // 51
	{0xCC, 0xCC, 0x00}, // 52
	{0xCC, 0xCC, 0x66}, // 53
	{0x99, 0x99, 0x00}, // 54
	{0x99, 0x99, 0x4C}, // 55
	{0x7F, 0x7F, 0x00}, // 56
	{0x7F, 0x7F, 0x3F}, // 57
	{0x4C, 0x4C, 0x00}, // 58
	{0x4C, 0x4C, 0x26}, // 59
	{0xBF, 0xFF, 0x00}, // 60
	{0xDF, 0xFF, 0x7F}, // 61
	{0x99, 0xCC, 0x00}, // 62
	{0xB2, 0xCC, 0x66}, // 63
	{0x72, 0x99, 0x00}, // 64
	{0x85, 0x99, 0x4C}, // 65
	{0x5F, 0x7F, 0x00}, // 66
	{0x6F, 0x7F, 0x3F}, // 67
	{0x39, 0x4C, 0x00}, // 68
	{0x42, 0x4C, 0x26}, // 69
	{0x7F, 0xFF, 0x00}, // 70
	{0xBF, 0xFF, 0x7F}, // 71
	{0x66, 0xCC, 0x00}, // 72
	{0x99, 0xCC, 0x66}, // 73
	{0x4C, 0x99, 0x00}, // 74
	{0x72, 0x99, 0x4C}, // 75
	{0x3F, 0x7F, 0x00}, // 76
	{0x5F, 0x7F, 0x3F}, // 77
	{0x26, 0x4C, 0x00}, // 78
	{0x39, 0x4C, 0x26}, // 79
	{0x3F, 0xFF, 0x00}, // 80
	{0x9F, 0xFF, 0x7F}, // 81
	{0x33, 0xCC, 0x00}, // 82
	{0x7F, 0xCC, 0x66}, // 83
	{0x26, 0x99, 0x00}, // 84
	{0x5F, 0x99, 0x4C}, // 85
	{0x1F, 0x7F, 0x00}, // 86
	{0x4F, 0x7F, 0x3F}, // 87
	{0x13, 0x4C, 0x00}, // 88
	{0x2F, 0x4C, 0x26}, // 89
	{0x00, 0xFF, 0x00}, // 90
	{0x7F, 0xFF, 0x7F}, // 91
	{0x00, 0xCC, 0x00}, // 92
	{0x66, 0xCC, 0x66}, // 93
	{0x00, 0x99, 0x00}, // 94
	{0x4C, 0x99, 0x4C}, // 95
	{0x00, 0x7F, 0x00}, // 96
	{0x3F, 0x7F, 0x3F}, // 97
	{0x00, 0x4C, 0x00}, // 98
	{0x26, 0x4C, 0x26}, // 99
	{0x00, 0xFF, 0x3F}, // 100
	{0x7F, 0xFF, 0x9F}, // 101
	{0x00, 0xCC, 0x33}, // 102
	{0x66, 0xCC, 0x7F}, // 103
	{0x00, 0x99, 0x26}, // 104
	{0x4C, 0x99, 0x5F}, // 105
	{0x00, 0x7F, 0x1F}, // 106
	{0x3F, 0x7F, 0x4F}, // 107
	{0x00, 0x4C, 0x13}, // 108
	{0x26, 0x4C, 0x2F}, // 109
	{0x00, 0xFF, 0x7F}, // 110
	{0x7F, 0xFF, 0xBF}, // 111
	{0x00, 0xCC, 0x66}, // 112
	{0x66, 0xCC, 0x99}, // 113
	{0x00, 0x99, 0x4C}, // 114
	{0x4C, 0x99, 0x72}, // 115
	{0x00, 0x7F, 0x3F}, // 116
	{0x3F, 0x7F, 0x5F}, // 117
	{0x00, 0x4C, 0x26}, // 118
	{0x26, 0x4C, 0x39}, // 119
	{0x00, 0xFF, 0xBF}, // 120
	{0x7F, 0xFF, 0xDF}, // 121
	{0x00, 0xCC, 0x99}, // 122
	{0x66, 0xCC, 0xB2}, // 123
	{0x00, 0x99, 0x72}, // 124
	{0x4C, 0x99, 0x85}, // 125
	{0x00, 0x7F, 0x5F}, // 126
	{0x3F, 0x7F, 0x6F}, // 127
	{0x00, 0x4C, 0x39}, // 128
	{0x26, 0x4C, 0x42}, // 129
	{0x00, 0xFF, 0xFF}, // 130
	{0x7F, 0xFF, 0xFF}, // 131
	{0x00, 0xCC, 0xCC}, // 132
	{0x66, 0xCC, 0xCC}, // 133
	{0x00, 0x99, 0x99}, // 134
	{0x4C, 0x99, 0x99}, // 135
	{0x00, 0x7F, 0x7F}, // 136
	{0x3F, 0x7F, 0x7F}, // 137
	{0x00, 0x4C, 0x4C}, // 138
	{0x26, 0x4C, 0x4C}, // 139
	{0x00, 0xBF, 0xFF}, // 140
	{0x7F, 0xDF, 0xFF}, // 141
	{0x00, 0x99, 0xCC}, // 142
	{0x66, 0xB2, 0xCC}, // 143
	{0x00, 0x72, 0x99}, // 144
	{0x4C, 0x85, 0x99}, // 145
	{0x00, 0x5F, 0x7F}, // 146
	{0x3F, 0x6F, 0x7F}, // 147
	{0x00, 0x39, 0x4C}, // 148
	{0x26, 0x42, 0x4C}, // 149
	{0x00, 0x7F, 0xFF}, // 150
	{0x7F, 0xBF, 0xFF}, // 151
	{0x00, 0x66, 0xCC}, // 152
	{0x66, 0x99, 0xCC}, // 153
	{0x00, 0x4C, 0x99}, // 154
	{0x4C, 0x72, 0x99}, // 155
	{0x00, 0x3F, 0x7F}, // 156
	{0x3F, 0x5F, 0x7F}, // 157
	{0x00, 0x26, 0x4C}, // 158
	{0x26, 0x39, 0x4C}, // 159
	{0x00, 0x3F, 0xFF}, // 160
	{0x7F, 0x9F, 0xFF}, // 161
	{0x00, 0x33, 0xCC}, // 162
	{0x66, 0x7F, 0xCC}, // 163
	{0x00, 0x26, 0x99}, // 164
	{0x4C, 0x5F, 0x99}, // 165
	{0x00, 0x1F, 0x7F}, // 166
	{0x3F, 0x4F, 0x7F}, // 167
	{0x00, 0x13, 0x4C}, // 168
	{0x26, 0x2F, 0x4C}, // 169
	{0x00, 0x00, 0xFF}, // 170
	{0x7F, 0x7F, 0xFF}, // 171
	{0x00, 0x00, 0xCC}, // 172
	{0x66, 0x66, 0xCC}, // 173
	{0x00, 0x00, 0x99}, // 174
	{0x4C, 0x4C, 0x99}, // 175
	{0x00, 0x00, 0x7F}, // 176
	{0x3F, 0x3F, 0x7F}, // 177
	{0x00, 0x00, 0x4C}, // 178
	{0x26, 0x26, 0x4C}, // 179
	{0x3F, 0x00, 0xFF}, // 180
	{0x9F, 0x7F, 0xFF}, // 181
	{0x33, 0x00, 0xCC}, // 182
	{0x7F, 0x66, 0xCC}, // 183
	{0x26, 0x00, 0x99}, // 184
	{0x5F, 0x4C, 0x99}, // 185
	{0x1F, 0x00, 0x7F}, // 186
	{0x4F, 0x3F, 0x7F}, // 187
	{0x13, 0x00, 0x4C}, // 188
	{0x2F, 0x26, 0x4C}, // 189
	{0x7F, 0x00, 0xFF}, // 190
	{0xBF, 0x7F, 0xFF}, // 191
	{0x66, 0x00, 0xCC}, // 192
	{0x99, 0x66, 0xCC}, // 193
	{0x4C, 0x00, 0x99}, // 194
	{0x72, 0x4C, 0x99}, // 195
	{0x3F, 0x00, 0x7F}, // 196
	{0x5F, 0x3F, 0x7F}, // 197
	{0x26, 0x00, 0x4C}, // 198
	{0x39, 0x26, 0x4C}, // 199
	{0xBF, 0x00, 0xFF}, // 200
	{0xDF, 0x7F, 0xFF}, // 201
	{0x99, 0x00, 0xCC}, // 202
	{0xB2, 0x66, 0xCC}, // 203
	{0x72, 0x00, 0x99}, // 204
	{0x85, 0x4C, 0x99}, // 205
	{0x5F, 0x00, 0x7F}, // 206
	{0x6F, 0x3F, 0x7F}, // 207
	{0x39, 0x00, 0x4C}, // 208
	{0x42, 0x26, 0x4C}, // 209
	{0xFF, 0x00, 0xFF}, // 210
	{0xFF, 0x7F, 0xFF}, // 211
	{0xCC, 0x00, 0xCC}, // 212
	{0xCC, 0x66, 0xCC}, // 213
	{0x99, 0x00, 0x99}, // 214
	{0x99, 0x4C, 0x99}, // 215
	{0x7F, 0x00, 0x7F}, // 216
	{0x7F, 0x3F, 0x7F}, // 217
	{0x4C, 0x00, 0x4C}, // 218
	{0x4C, 0x26, 0x4C}, // 219
	{0xFF, 0x00, 0xBF}, // 220
	{0xFF, 0x7F, 0xDF}, // 221
	{0xCC, 0x00, 0x99}, // 222
	{0xCC, 0x66, 0xB2}, // 223
	{0x99, 0x00, 0x72}, // 224
	{0x99, 0x4C, 0x85}, // 225
	{0x7F, 0x00, 0x5F}, // 226
	{0x7F, 0x3F, 0x6F}, // 227
	{0x4C, 0x00, 0x39}, // 228
	{0x4C, 0x26, 0x42}, // 229
	{0xFF, 0x00, 0x7F}, // 230
	{0xFF, 0x7F, 0xBF}, // 231
	{0xCC, 0x00, 0x66}, // 232
	{0xCC, 0x66, 0x99}, // 233
	{0x99, 0x00, 0x4C}, // 234
	{0x99, 0x4C, 0x72}, // 235
	{0x7F, 0x00, 0x3F}, // 236
	{0x7F, 0x3F, 0x5F}, // 237
	{0x4C, 0x00, 0x26}, // 238
	{0x4C, 0x26, 0x39}, // 239
	{0xFF, 0x00, 0x3F}, // 240
	{0xFF, 0x7F, 0x9F}, // 241
	{0xCC, 0x00, 0x33}, // 242
	{0xCC, 0x66, 0x7F}, // 243
	{0x99, 0x00, 0x26}, // 244
	{0x99, 0x4C, 0x5F}, // 245
	{0x7F, 0x00, 0x1F}, // 246
	{0x7F, 0x3F, 0x4F}, // 247
	{0x4C, 0x00, 0x13}, // 248
	{0x4C, 0x26, 0x2F}, // 249
	{0x33, 0x33, 0x33}, // 250
	{0x50, 0x50, 0x50}, // 251
	{0x69, 0x69, 0x69}, // 252
	{0x82, 0x82, 0x82}, // 253
	{0xBE, 0xBE, 0xBE}, // 254
	{0xFF, 0xFF, 0xFF}, // 255
}

package validators

import "go.mongodb.org/mongo-driver/bson"

var SubmissionValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"kind",
			"raw",
			"payload",
			"forwarded",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType":  "string",
				"minLength": 36,
				"maxLength": 36,
			},

			"kind": bson.M{
				"enum": []string{"property", "project", "investor"},
			},

			"raw": bson.M{
				"bsonType": "object",
			},

			"payload": bson.M{
				"bsonType": "object",
				"required": []string{"name", "additional_data"},
				"properties": bson.M{
					"name": bson.M{
						"bsonType":  "string",
						"minLength": 1,
					},
					"additional_data": bson.M{
						"bsonType": "string",
					},
				},
			},

			"degraded": bson.M{
				"bsonType": "array",
				"items": bson.M{
					"bsonType": "string",
				},
			},

			"forwarded": bson.M{
				"bsonType": "bool",
			},

			"backend": bson.M{
				"bsonType": "string",
			},

			"created_at": bson.M{
				"bsonType": "date",
			},

			"updated_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}

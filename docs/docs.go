// Package docs holds the Swagger 2.0 document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/analyses": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Анализ"
                ],
                "summary": "Анализ разрыва навыков под вакансию",
                "parameters": [
                    {
                        "description": "Целевая вакансия, текущие навыки и часы в день",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.analyzeRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/advisor.Report"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/presenter.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.liveness"
                        }
                    }
                }
            }
        },
        "/jobs": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Вакансии"
                ],
                "summary": "Поиск вакансий по названию",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Подстрока названия",
                        "name": "q",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Readiness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "advisor.Report": {
            "type": "object",
            "properties": {
                "foundationCourses": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/course.Recommended"
                    }
                },
                "hoursPerDay": {
                    "type": "number"
                },
                "id": {
                    "type": "string"
                },
                "jobTitle": {
                    "type": "string"
                },
                "matched": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "missing": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "professionalCourses": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/course.Recommended"
                    }
                },
                "required": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "skillHours": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "number",
                        "x-nullable": true
                    }
                },
                "targetJob": {
                    "type": "string"
                },
                "totalDays": {
                    "type": "number"
                },
                "totalHours": {
                    "type": "number"
                }
            }
        },
        "course.Recommended": {
            "type": "object",
            "properties": {
                "coveredSkills": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "credential": {
                    "type": "string"
                },
                "duration": {
                    "type": "string"
                },
                "link": {
                    "type": "string"
                },
                "platform": {
                    "type": "string"
                },
                "provider": {
                    "type": "string"
                },
                "rating": {
                    "type": "number"
                },
                "title": {
                    "type": "string"
                },
                "totalCovered": {
                    "type": "integer"
                }
            }
        },
        "dataset.Stats": {
            "type": "object",
            "properties": {
                "foundationCourses": {
                    "type": "integer"
                },
                "jobs": {
                    "type": "integer"
                },
                "professionalCourses": {
                    "type": "integer"
                },
                "skillDurations": {
                    "type": "integer"
                }
            }
        },
        "handlers.liveness": {
            "type": "object",
            "properties": {
                "datasets": {
                    "$ref": "#/definitions/dataset.Stats"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "handlers.analyzeRequest": {
            "type": "object",
            "properties": {
                "currentSkills": {
                    "type": "string"
                },
                "hoursPerDay": {
                    "type": "number"
                },
                "targetJob": {
                    "type": "string"
                }
            }
        },
        "presenter.ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "skillpath API",
	Description:      "Сервис оценки разрыва навыков под целевую вакансию, расчёта времени обучения и подбора курсов.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

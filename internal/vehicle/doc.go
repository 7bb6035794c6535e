// Package vehicle defines the capability contracts composed into a car
// model, plus the shared result and error types.
//
// Each sub-model is an interface satisfied by the implementations in
// its own package:
//
//   - [TyreModel]: slip-to-force curves and the friction-ellipse coupling
//   - [AeroModel]: speed-to-downforce and speed-to-drag
//   - [Chassis]: geometric scalars and axle load-transfer estimates
//   - [DriveTrain]: torque delivered on the powered axle
//
// All quantities are SI: meters, seconds, kilograms, Newtons, radians.
// Implementations are expected to be stateless; a stateless sub-model
// may be shared between car models and queried concurrently.
package vehicle

// Package chase holds the per-frame movement rules of the tail chain and the
// camera as pure functions over logical world positions. Systems in
// ecs/system apply them to the world; nothing here touches an ECS world.
package chase
